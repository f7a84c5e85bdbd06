package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/viajemos/viajemos/internal/pkg/database"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/users"
)

// CreateRating inserts the rating and folds it into the rated user's score
// total in one transaction. The average is derived from the exact total so
// rounding never accumulates.
func (r *UserRepo) CreateRating(ctx context.Context, rating *models.Rating) error {
	return database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO ratings (id, rated_user_id, rater_id, trip_id, score, comment, created_at)
			VALUES (:id, :rated_user_id, :rater_id, :trip_id, :score, :comment, :created_at)
			ON CONFLICT (rater_id, rated_user_id, trip_id) DO NOTHING
		`
		result, err := tx.NamedExecContext(ctx, insert, rating)
		if err != nil {
			return fmt.Errorf("failed to insert rating: %w", err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return users.ErrDuplicateRating
		}

		update := `
			UPDATE users
			SET rating_sum = rating_sum + $1,
				rating_count = rating_count + 1,
				rating_avg = ROUND((rating_sum + $1)::numeric / (rating_count + 1), 2),
				updated_at = $2
			WHERE id = $3
		`
		result, err = tx.ExecContext(ctx, update, rating.Score, rating.CreatedAt, rating.RatedUserID)
		if err != nil {
			return fmt.Errorf("failed to update rating average: %w", err)
		}
		if rows, err = result.RowsAffected(); err != nil {
			return fmt.Errorf("failed to get affected rows: %w", err)
		}
		if rows == 0 {
			return users.ErrUserNotFound
		}
		return nil
	})
}

// ListRatings returns the ratings received by a user, newest first
func (r *UserRepo) ListRatings(ctx context.Context, ratedUserID uuid.UUID) ([]*models.Rating, error) {
	var ratings []*models.Rating
	query := `
		SELECT id, rated_user_id, rater_id, trip_id, score, comment, created_at
		FROM ratings
		WHERE rated_user_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &ratings, query, ratedUserID); err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}
