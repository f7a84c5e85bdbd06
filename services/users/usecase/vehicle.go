package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/viajemos/viajemos/internal/pkg/logger"
	"github.com/viajemos/viajemos/internal/pkg/models"
	"github.com/viajemos/viajemos/internal/pkg/verification"
	"github.com/viajemos/viajemos/services/users"
)

const (
	minVehicleYear  = 1950
	maxVehicleSeats = 8
)

func normalizePlate(plate string) string {
	return strings.ToUpper(strings.Join(strings.Fields(plate), ""))
}

func validDocumentURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// AddVehicle registers a vehicle for a driver. Documents sent along are
// queued for review like any later submission.
func (uc *UserUC) AddVehicle(ctx context.Context, ownerID uuid.UUID, req *models.VehicleRequest) (*models.Vehicle, error) {
	if req == nil {
		return nil, invalid("request is required")
	}
	owner, err := uc.userRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner.Role != models.RoleDriver {
		return nil, users.ErrNotDriver
	}

	plate := normalizePlate(req.Plate)
	switch {
	case strings.TrimSpace(req.Make) == "" || strings.TrimSpace(req.Model) == "":
		return nil, invalid("make and model are required")
	case plate == "":
		return nil, invalid("plate is required")
	case req.Seats < 1 || req.Seats > maxVehicleSeats:
		return nil, invalid("seats must be between 1 and %d", maxVehicleSeats)
	case req.Year < minVehicleYear || req.Year > time.Now().Year()+1:
		return nil, invalid("year %d is out of range", req.Year)
	}

	now := models.Now()
	vehicle := &models.Vehicle{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Make:      strings.TrimSpace(req.Make),
		Model:     strings.TrimSpace(req.Model),
		Year:      req.Year,
		Plate:     plate,
		Color:     strings.TrimSpace(req.Color),
		Seats:     req.Seats,
		CreatedAt: now,
		UpdatedAt: now,
	}
	docs := map[verification.Category]string{
		verification.CategoryOwnership:  req.OwnershipURL,
		verification.CategoryInsurance:  req.InsuranceURL,
		verification.CategoryInspection: req.InspectionURL,
	}
	for category, raw := range docs {
		if raw != "" && !validDocumentURL(raw) {
			return nil, invalid("%s document url is not valid", category)
		}
		*vehicle.Document(category) = models.Document{URL: raw, Status: verification.StatusPending}
	}
	vehicle.RecomputeVerification()

	if err := uc.userRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Vehicle registered",
		logger.String("vehicle_id", vehicle.ID.String()),
		logger.String("owner_id", ownerID.String()))
	return vehicle, nil
}

// ListVehicles returns the owner's vehicles
func (uc *UserUC) ListVehicles(ctx context.Context, ownerID uuid.UUID) ([]*models.Vehicle, error) {
	return uc.userRepo.ListVehiclesByOwner(ctx, ownerID)
}

// GetVehicle returns a vehicle owned by ownerID
func (uc *UserUC) GetVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := uc.userRepo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != ownerID {
		return nil, users.ErrNotVehicleOwner
	}
	return vehicle, nil
}

// DeleteVehicle removes one of the owner's vehicles
func (uc *UserUC) DeleteVehicle(ctx context.Context, ownerID, vehicleID uuid.UUID) error {
	if _, err := uc.GetVehicle(ctx, ownerID, vehicleID); err != nil {
		return err
	}
	return uc.userRepo.DeleteVehicle(ctx, vehicleID, ownerID)
}

// SubmitDocument replaces the document of category and sends it back to
// pending review
func (uc *UserUC) SubmitDocument(ctx context.Context, ownerID, vehicleID uuid.UUID, category verification.Category, rawURL string) (*models.Vehicle, error) {
	if !validDocumentURL(rawURL) {
		return nil, invalid("document url is not valid")
	}
	vehicle, err := uc.GetVehicle(ctx, ownerID, vehicleID)
	if err != nil {
		return nil, err
	}

	doc := vehicle.Document(category)
	if doc == nil {
		return nil, invalid("unknown document category %q", category)
	}
	*doc = models.Document{URL: rawURL, Status: verification.StatusPending}

	return uc.saveDocuments(ctx, vehicle)
}

// ReviewDocument records a reviewer decision. Pending is not a decision.
func (uc *UserUC) ReviewDocument(ctx context.Context, vehicleID uuid.UUID, category verification.Category, review *models.DocumentReview) (*models.Vehicle, error) {
	if review == nil || !review.Status.Valid() || review.Status == verification.StatusPending {
		return nil, invalid("status must be %s, %s or %s",
			verification.StatusUnderReview, verification.StatusApproved, verification.StatusRejected)
	}
	vehicle, err := uc.userRepo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	doc := vehicle.Document(category)
	if doc == nil {
		return nil, invalid("unknown document category %q", category)
	}
	if doc.URL == "" {
		return nil, users.ErrDocumentMissing
	}
	doc.Status = review.Status
	doc.Note = strings.TrimSpace(review.Note)

	previous := vehicle.VerificationStatus
	vehicle, err = uc.saveDocuments(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Vehicle document reviewed",
		logger.String("vehicle_id", vehicleID.String()),
		logger.String("category", string(category)),
		logger.String("document_status", string(review.Status)),
		logger.String("previous_status", string(previous)),
		logger.String("verification_status", string(vehicle.VerificationStatus)))
	return vehicle, nil
}

func (uc *UserUC) saveDocuments(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	readUpdatedAt := vehicle.UpdatedAt
	vehicle.RecomputeVerification()
	vehicle.UpdatedAt = models.Now()
	if err := uc.userRepo.UpdateVehicleDocuments(ctx, vehicle, readUpdatedAt); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// GetVehicleStatus is the summary served to other services
func (uc *UserUC) GetVehicleStatus(ctx context.Context, vehicleID uuid.UUID) (*models.VehicleStatus, error) {
	vehicle, err := uc.userRepo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	return &models.VehicleStatus{
		VehicleID:          vehicle.ID.String(),
		OwnerID:            vehicle.OwnerID.String(),
		Seats:              vehicle.Seats,
		VerificationStatus: vehicle.VerificationStatus,
	}, nil
}
