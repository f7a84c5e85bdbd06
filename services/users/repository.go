package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/viajemos/viajemos/services/users UserRepo

// UserRepo defines the persistence operations of the users service
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	GetVehicle(ctx context.Context, id uuid.UUID) (*models.Vehicle, error)
	ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error)
	// UpdateVehicleDocuments writes the documents only if the vehicle still
	// carries readUpdatedAt, otherwise ErrVehicleChanged
	UpdateVehicleDocuments(ctx context.Context, vehicle *models.Vehicle, readUpdatedAt time.Time) error
	DeleteVehicle(ctx context.Context, id, ownerID uuid.UUID) error

	// CreateRating stores the rating and folds it into the rated user's average
	CreateRating(ctx context.Context, rating *models.Rating) error
	ListRatings(ctx context.Context, ratedUserID uuid.UUID) ([]*models.Rating, error)
}
