package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/viajemos/viajemos/internal/pkg/jwt"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/verification"
	"github.com/viajemos/viajemos/services/users"
	"github.com/viajemos/viajemos/services/users/mocks"
)

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepo(ctrl)

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}
	uc := NewUserUC(mockRepo, cfg)
	uc.bcryptCost = bcrypt.MinCost
	return uc, mockRepo
}

func validRegister() *models.RegisterRequest {
	return &models.RegisterRequest{
		Email:    "  Ana.Perez@Example.com ",
		Password: "secreto123",
		FullName: " Ana Pérez ",
		Phone:    "011 4555-1234",
		Role:     models.RoleDriver,
	}
}

func TestRegister_Success(t *testing.T) {
	uc, mockRepo := newTestUC(t)

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.Equal(t, "ana.perez@example.com", user.Email)
			assert.Equal(t, "Ana Pérez", user.FullName)
			assert.Equal(t, "541145551234", user.Phone)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreto123")))
			return nil
		})

	user, err := uc.Register(context.Background(), validRegister())

	require.NoError(t, err)
	assert.Equal(t, models.RoleDriver, user.Role)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *models.RegisterRequest)
	}{
		{name: "bad email", modify: func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{name: "short password", modify: func(r *models.RegisterRequest) { r.Password = "123" }},
		{name: "missing name", modify: func(r *models.RegisterRequest) { r.FullName = "  " }},
		{name: "unknown role", modify: func(r *models.RegisterRequest) { r.Role = "admin" }},
		{name: "bad phone", modify: func(r *models.RegisterRequest) { r.Phone = "12" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUC(t)
			req := validRegister()
			tt.modify(req)

			_, err := uc.Register(context.Background(), req)
			assert.ErrorIs(t, err, users.ErrInvalidInput)
		})
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(users.ErrEmailTaken)

	_, err := uc.Register(context.Background(), validRegister())
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func storedUser(t *testing.T, password string, role models.Role) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: string(hash), Role: role}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		user := storedUser(t, "secreto123", models.RoleTraveller)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(user, nil)

		resp, err := uc.Login(context.Background(), &models.LoginRequest{Email: "ANA@example.com", Password: "secreto123"})
		require.NoError(t, err)

		claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, models.RoleTraveller, claims.Role)
		assert.Equal(t, user, resp.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(storedUser(t, "secreto123", models.RoleDriver), nil)

		_, err := uc.Login(context.Background(), &models.LoginRequest{Email: "ana@example.com", Password: "otra"})
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "nadie@example.com").Return(nil, users.ErrUserNotFound)

		_, err := uc.Login(context.Background(), &models.LoginRequest{Email: "nadie@example.com", Password: "x"})
		assert.ErrorIs(t, err, users.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := uc.Login(context.Background(), &models.LoginRequest{Email: "ana@example.com", Password: "x"})
		assert.EqualError(t, err, "db down")
	})
}

func TestUpdateProfile(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	user := &models.User{ID: uuid.New(), FullName: "Ana", Phone: "541100000000"}
	name := " Ana María "
	phone := "+54 9 351 555 1234"
	prefs := models.Preferences{AcceptsPets: true, LikesToTalk: true}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().UpdateUser(gomock.Any(), user).Return(nil)

	updated, err := uc.UpdateProfile(context.Background(), user.ID, &models.ProfileUpdate{
		FullName:    &name,
		Phone:       &phone,
		Preferences: &prefs,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.FullName)
	assert.Equal(t, "5493515551234", updated.Phone)
	assert.True(t, updated.AcceptsPets)
	assert.False(t, updated.AcceptsSmoking)
}

func TestUpdateProfile_RejectsEmptyName(t *testing.T) {
	uc, _ := newTestUC(t)
	empty := " "

	_, err := uc.UpdateProfile(context.Background(), uuid.New(), &models.ProfileUpdate{FullName: &empty})
	assert.ErrorIs(t, err, users.ErrInvalidInput)
}

func TestAddVehicle(t *testing.T) {
	req := &models.VehicleRequest{
		Make:         "Fiat",
		Model:        "Cronos",
		Year:         2021,
		Plate:        "ab 123 cd",
		Seats:        4,
		OwnershipURL: "https://files.example.com/cedula.pdf",
	}

	t.Run("driver", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		owner := &models.User{ID: uuid.New(), Role: models.RoleDriver}
		mockRepo.EXPECT().GetUserByID(gomock.Any(), owner.ID).Return(owner, nil)
		mockRepo.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(nil)

		vehicle, err := uc.AddVehicle(context.Background(), owner.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "AB123CD", vehicle.Plate)
		assert.Equal(t, owner.ID, vehicle.OwnerID)
		assert.Equal(t, verification.StatusPending, vehicle.Ownership.Status)
		assert.Equal(t, "https://files.example.com/cedula.pdf", vehicle.Ownership.URL)
		assert.Equal(t, verification.StatusUnderReview, vehicle.VerificationStatus)
	})

	t.Run("traveller", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		owner := &models.User{ID: uuid.New(), Role: models.RoleTraveller}
		mockRepo.EXPECT().GetUserByID(gomock.Any(), owner.ID).Return(owner, nil)

		_, err := uc.AddVehicle(context.Background(), owner.ID, req)
		assert.ErrorIs(t, err, users.ErrNotDriver)
	})

	t.Run("invalid seats", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		owner := &models.User{ID: uuid.New(), Role: models.RoleDriver}
		mockRepo.EXPECT().GetUserByID(gomock.Any(), owner.ID).Return(owner, nil)

		bad := *req
		bad.Seats = 0
		_, err := uc.AddVehicle(context.Background(), owner.ID, &bad)
		assert.ErrorIs(t, err, users.ErrInvalidInput)
	})
}

var docsReadAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func vehicleWithDocs(ownerID uuid.UUID) *models.Vehicle {
	v := &models.Vehicle{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		UpdatedAt:  docsReadAt,
		Ownership:  models.Document{URL: "https://x/1", Status: verification.StatusApproved},
		Insurance:  models.Document{URL: "https://x/2", Status: verification.StatusApproved},
		Inspection: models.Document{URL: "https://x/3", Status: verification.StatusUnderReview},
	}
	v.RecomputeVerification()
	return v
}

func TestSubmitDocument(t *testing.T) {
	ownerID := uuid.New()

	t.Run("resets the category to pending", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		vehicle := vehicleWithDocs(ownerID)
		vehicle.Insurance.Note = "expired"
		mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
		mockRepo.EXPECT().UpdateVehicleDocuments(gomock.Any(), vehicle, docsReadAt).Return(nil)

		updated, err := uc.SubmitDocument(context.Background(), ownerID, vehicle.ID, verification.CategoryInsurance, "https://x/new")
		require.NoError(t, err)
		assert.Equal(t, models.Document{URL: "https://x/new", Status: verification.StatusPending}, updated.Insurance)
		assert.Equal(t, verification.StatusUnderReview, updated.VerificationStatus)
	})

	t.Run("other owner", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		vehicle := vehicleWithDocs(uuid.New())
		mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)

		_, err := uc.SubmitDocument(context.Background(), ownerID, vehicle.ID, verification.CategoryInsurance, "https://x/new")
		assert.ErrorIs(t, err, users.ErrNotVehicleOwner)
	})

	t.Run("invalid url", func(t *testing.T) {
		uc, _ := newTestUC(t)
		_, err := uc.SubmitDocument(context.Background(), ownerID, uuid.New(), verification.CategoryInsurance, "ftp://nope")
		assert.ErrorIs(t, err, users.ErrInvalidInput)
	})
}

func TestReviewDocument(t *testing.T) {
	tests := []struct {
		name     string
		category verification.Category
		status   verification.Status
		want     verification.Status
	}{
		{name: "last approval approves the vehicle", category: verification.CategoryInspection, status: verification.StatusApproved, want: verification.StatusApproved},
		{name: "any rejection rejects the vehicle", category: verification.CategoryOwnership, status: verification.StatusRejected, want: verification.StatusRejected},
		{name: "back under review", category: verification.CategoryOwnership, status: verification.StatusUnderReview, want: verification.StatusUnderReview},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo := newTestUC(t)
			vehicle := vehicleWithDocs(uuid.New())
			mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
			mockRepo.EXPECT().UpdateVehicleDocuments(gomock.Any(), vehicle, docsReadAt).Return(nil)

			updated, err := uc.ReviewDocument(context.Background(), vehicle.ID, tt.category,
				&models.DocumentReview{Status: tt.status, Note: " ok "})
			require.NoError(t, err)
			assert.Equal(t, tt.want, updated.VerificationStatus)
			assert.Equal(t, "ok", updated.Document(tt.category).Note)
		})
	}
}

func TestReviewDocument_ConcurrentChange(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	vehicle := vehicleWithDocs(uuid.New())
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)
	mockRepo.EXPECT().UpdateVehicleDocuments(gomock.Any(), vehicle, docsReadAt).Return(users.ErrVehicleChanged)

	updated, err := uc.ReviewDocument(context.Background(), vehicle.ID, verification.CategoryInspection,
		&models.DocumentReview{Status: verification.StatusApproved})

	assert.ErrorIs(t, err, users.ErrVehicleChanged)
	assert.Nil(t, updated)
}

func TestReviewDocument_Rejects(t *testing.T) {
	t.Run("pending is not a decision", func(t *testing.T) {
		uc, _ := newTestUC(t)
		_, err := uc.ReviewDocument(context.Background(), uuid.New(), verification.CategoryOwnership,
			&models.DocumentReview{Status: verification.StatusPending})
		assert.ErrorIs(t, err, users.ErrInvalidInput)
	})

	t.Run("document not submitted", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		vehicle := vehicleWithDocs(uuid.New())
		vehicle.Inspection = models.Document{Status: verification.StatusPending}
		mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)

		_, err := uc.ReviewDocument(context.Background(), vehicle.ID, verification.CategoryInspection,
			&models.DocumentReview{Status: verification.StatusApproved})
		assert.ErrorIs(t, err, users.ErrDocumentMissing)
	})
}

func TestGetVehicleStatus(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	vehicle := vehicleWithDocs(uuid.New())
	vehicle.Seats = 3
	mockRepo.EXPECT().GetVehicle(gomock.Any(), vehicle.ID).Return(vehicle, nil)

	status, err := uc.GetVehicleStatus(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, &models.VehicleStatus{
		VehicleID:          vehicle.ID.String(),
		OwnerID:            vehicle.OwnerID.String(),
		Seats:              3,
		VerificationStatus: verification.StatusUnderReview,
	}, status)
}

func TestRateUser(t *testing.T) {
	raterID, ratedID, tripID := uuid.New(), uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), ratedID).Return(&models.User{ID: ratedID}, nil)
		mockRepo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.Rating) error {
				assert.Equal(t, raterID, r.RaterID)
				assert.Equal(t, ratedID, r.RatedUserID)
				assert.Equal(t, tripID, r.TripID)
				return nil
			})

		rating, err := uc.RateUser(context.Background(), raterID, ratedID,
			&models.RatingRequest{TripID: tripID.String(), Score: 5, Comment: " Excelente "})
		require.NoError(t, err)
		assert.Equal(t, "Excelente", rating.Comment)
	})

	t.Run("duplicate", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), ratedID).Return(&models.User{ID: ratedID}, nil)
		mockRepo.EXPECT().CreateRating(gomock.Any(), gomock.Any()).Return(users.ErrDuplicateRating)

		_, err := uc.RateUser(context.Background(), raterID, ratedID,
			&models.RatingRequest{TripID: tripID.String(), Score: 4})
		assert.ErrorIs(t, err, users.ErrDuplicateRating)
	})

	for _, score := range []int{0, 6} {
		uc, _ := newTestUC(t)
		_, err := uc.RateUser(context.Background(), raterID, ratedID,
			&models.RatingRequest{TripID: tripID.String(), Score: score})
		assert.ErrorIs(t, err, users.ErrInvalidInput, "score %d", score)
	}

	uc, _ := newTestUC(t)
	_, err := uc.RateUser(context.Background(), raterID, raterID, &models.RatingRequest{TripID: tripID.String(), Score: 5})
	assert.ErrorIs(t, err, users.ErrSelfRating)
}
