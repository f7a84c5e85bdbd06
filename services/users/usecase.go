package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/verification"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/viajemos/viajemos/services/users UserUC

// UserUC represents the user usecase interface
type UserUC interface {
	// accounts
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update *models.ProfileUpdate) (*models.User, error)

	// vehicles and their verification
	AddVehicle(ctx context.Context, ownerID uuid.UUID, req *models.VehicleRequest) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error)
	GetVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) error
	SubmitDocument(ctx context.Context, ownerID, vehicleID uuid.UUID, category verification.Category, url string) (*models.Vehicle, error)
	ReviewDocument(ctx context.Context, vehicleID uuid.UUID, category verification.Category, review *models.DocumentReview) (*models.Vehicle, error)
	GetVehicleStatus(ctx context.Context, vehicleID uuid.UUID) (*models.VehicleStatus, error)

	// ratings
	RateUser(ctx context.Context, raterID, ratedUserID uuid.UUID, req *models.RatingRequest) (*models.Rating, error)
	ListRatings(ctx context.Context, userID uuid.UUID) ([]*models.Rating, error)
}
