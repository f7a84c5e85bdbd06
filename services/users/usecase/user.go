package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
)

// GetProfile returns a user's public profile
func (uc *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile applies the present fields of update
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, update *models.ProfileUpdate) (*models.User, error) {
	if update == nil {
		return nil, invalid("request is required")
	}
	if update.FullName != nil {
		name := strings.TrimSpace(*update.FullName)
		if name == "" {
			return nil, invalid("full name cannot be empty")
		}
		update.FullName = &name
	}
	if update.Phone != nil {
		phone, err := utils.NormalizePhone(*update.Phone)
		if err != nil {
			return nil, invalid("%v", err)
		}
		update.Phone = &phone
	}
	if update.Address != nil {
		address := strings.TrimSpace(*update.Address)
		update.Address = &address
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	update.Apply(user)
	user.UpdatedAt = models.Now()

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
