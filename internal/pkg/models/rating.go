package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a score one user leaves for another after a trip (calificaciones)
type Rating struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RatedUserID uuid.UUID `json:"rated_user_id" db:"rated_user_id"`
	RaterID     uuid.UUID `json:"rater_id" db:"rater_id"`
	TripID      uuid.UUID `json:"trip_id" db:"trip_id"`
	Score       int       `json:"score" db:"score"`
	Comment     string    `json:"comment" db:"comment"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// RatingRequest is the payload to rate a user
type RatingRequest struct {
	TripID  string `json:"trip_id"`
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}
