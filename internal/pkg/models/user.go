package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the marketplace role a user signs up with
type Role string

const (
	RoleDriver    Role = "conductor"
	RoleTraveller Role = "viajero"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleDriver || r == RoleTraveller
}

// Preferences are the travel preference flags shown on a profile
type Preferences struct {
	AcceptsPets    bool `json:"accepts_pets" db:"accepts_pets"`
	AcceptsSmoking bool `json:"accepts_smoking" db:"accepts_smoking"`
	AcceptsMusic   bool `json:"accepts_music" db:"accepts_music"`
	LikesToTalk    bool `json:"likes_to_talk" db:"likes_to_talk"`
}

// User represents a marketplace user (usuarios)
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Phone        string    `json:"phone" db:"phone"`
	Address      string    `json:"address" db:"address"`
	Role         Role      `json:"role" db:"role"`
	Preferences  `json:"preferences"`
	RatingAvg   float64   `json:"rating_avg" db:"rating_avg"`
	RatingCount int       `json:"rating_count" db:"rating_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// RegisterRequest is the sign-up payload
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
}

// LoginRequest is the sign-in payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user"`
}

// ProfileUpdate supports PATCH-style updates via pointer presence
type ProfileUpdate struct {
	FullName    *string      `json:"full_name"`
	Phone       *string      `json:"phone"`
	Address     *string      `json:"address"`
	Preferences *Preferences `json:"preferences"`
}

// Apply copies the present fields of the update onto u
func (p ProfileUpdate) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.Preferences != nil {
		u.Preferences = *p.Preferences
	}
}
