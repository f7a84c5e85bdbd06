package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/viajemos/viajemos/internal/pkg/jwt"
	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/utils"
	"github.com/viajemos/viajemos/services/users"
)

const minPasswordLength = 6

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", users.ErrInvalidInput, fmt.Sprintf(format, args...))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with a bcrypt password hash
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if req == nil {
		return nil, invalid("request is required")
	}

	email := normalizeEmail(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, invalid("a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, invalid("password must have at least %d characters", minPasswordLength)
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, invalid("full name is required")
	}
	if !req.Role.Valid() {
		return nil, invalid("role must be %q or %q", models.RoleDriver, models.RoleTraveller)
	}
	phone, err := utils.NormalizePhone(req.Phone)
	if err != nil {
		return nil, invalid("%v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := models.Now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Phone:        phone,
		Role:         req.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(email)),
		logger.String("role", string(user.Role)))

	return user, nil
}

// Login checks the credentials and issues an access token
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, invalid("email and password are required")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Login failed",
			logger.String("user_id", user.ID.String()))
		return nil, users.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
