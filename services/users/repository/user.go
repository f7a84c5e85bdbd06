package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/users"
)

const userColumns = `id, email, password_hash, full_name, phone, address, role,
	accepts_pets, accepts_smoking, accepts_music, likes_to_talk,
	rating_avg, rating_count, created_at, updated_at`

// CreateUser inserts a new user. A duplicate email yields users.ErrEmailTaken.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, full_name, phone, address, role,
			accepts_pets, accepts_smoking, accepts_music, likes_to_talk,
			rating_avg, rating_count, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :full_name, :phone, :address, :role,
			:accepts_pets, :accepts_smoking, :accepts_music, :likes_to_talk,
			:rating_avg, :rating_count, :created_at, :updated_at)
		ON CONFLICT (email) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return users.ErrEmailTaken
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.getUser(ctx, query, id)
}

// GetUserByEmail retrieves a user by its normalized email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.getUser(ctx, query, email)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateUser saves the editable profile fields
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET full_name = :full_name, phone = :phone, address = :address,
			accepts_pets = :accepts_pets, accepts_smoking = :accepts_smoking,
			accepts_music = :accepts_music, likes_to_talk = :likes_to_talk,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return users.ErrUserNotFound
	}
	return nil
}
