package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/users"
)

const maxCommentLength = 500

// RateUser records a 1-5 score for ratedUserID on a trip. A rater may rate
// the same user once per trip.
func (uc *UserUC) RateUser(ctx context.Context, raterID, ratedUserID uuid.UUID, req *models.RatingRequest) (*models.Rating, error) {
	if req == nil {
		return nil, invalid("request is required")
	}
	if raterID == ratedUserID {
		return nil, users.ErrSelfRating
	}
	if req.Score < 1 || req.Score > 5 {
		return nil, invalid("score must be between 1 and 5")
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, invalid("trip_id is not a valid id")
	}
	comment := strings.TrimSpace(req.Comment)
	if len([]rune(comment)) > maxCommentLength {
		return nil, invalid("comment is longer than %d characters", maxCommentLength)
	}

	if _, err := uc.userRepo.GetUserByID(ctx, ratedUserID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		ID:          uuid.New(),
		RatedUserID: ratedUserID,
		RaterID:     raterID,
		TripID:      tripID,
		Score:       req.Score,
		Comment:     comment,
		CreatedAt:   models.Now(),
	}
	if err := uc.userRepo.CreateRating(ctx, rating); err != nil {
		return nil, err
	}
	return rating, nil
}

// ListRatings returns the ratings a user received
func (uc *UserUC) ListRatings(ctx context.Context, userID uuid.UUID) ([]*models.Rating, error) {
	return uc.userRepo.ListRatings(ctx, userID)
}
