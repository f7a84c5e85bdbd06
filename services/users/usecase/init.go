package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/services/users"
)

// UserUC implements users.UserUC
type UserUC struct {
	userRepo   users.UserRepo
	cfg        *models.Config
	bcryptCost int
}

// NewUserUC creates a new user usecase instance
func NewUserUC(userRepo users.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo:   userRepo,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
	}
}
