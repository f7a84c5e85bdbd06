package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/viajemos/viajemos/internal/pkg/verification"
)

// Document is one reviewed piece of vehicle paperwork
type Document struct {
	URL    string              `json:"url"`
	Status verification.Status `json:"status"`
	Note   string              `json:"note,omitempty"`
}

// Vehicle represents a driver's vehicle (vehiculos)
type Vehicle struct {
	ID                 uuid.UUID           `json:"id"`
	OwnerID            uuid.UUID           `json:"owner_id"`
	Make               string              `json:"make"`
	Model              string              `json:"model"`
	Year               int                 `json:"year"`
	Plate              string              `json:"plate"`
	Color              string              `json:"color"`
	Seats              int                 `json:"seats"`
	Ownership          Document            `json:"ownership"`
	Insurance          Document            `json:"insurance"`
	Inspection         Document            `json:"inspection"`
	VerificationStatus verification.Status `json:"verification_status"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// Document returns a pointer to the document of the given category
func (v *Vehicle) Document(c verification.Category) *Document {
	switch c {
	case verification.CategoryOwnership:
		return &v.Ownership
	case verification.CategoryInsurance:
		return &v.Insurance
	case verification.CategoryInspection:
		return &v.Inspection
	}
	return nil
}

// RecomputeVerification refreshes the overall status from the three documents
func (v *Vehicle) RecomputeVerification() verification.Status {
	v.VerificationStatus = verification.Aggregate(v.Ownership.Status, v.Insurance.Status, v.Inspection.Status)
	return v.VerificationStatus
}

// VehicleRequest is the payload to register a vehicle
type VehicleRequest struct {
	Make          string `json:"make"`
	Model         string `json:"model"`
	Year          int    `json:"year"`
	Plate         string `json:"plate"`
	Color         string `json:"color"`
	Seats         int    `json:"seats"`
	OwnershipURL  string `json:"ownership_url"`
	InsuranceURL  string `json:"insurance_url"`
	InspectionURL string `json:"inspection_url"`
}

// DocumentSubmission uploads a document URL for review
type DocumentSubmission struct {
	URL string `json:"url"`
}

// DocumentReview is a reviewer's decision on one document
type DocumentReview struct {
	Status verification.Status `json:"status"`
	Note   string              `json:"note"`
}

// VehicleStatus is the summary the trips service asks for
type VehicleStatus struct {
	VehicleID          string              `json:"vehicle_id"`
	OwnerID            string              `json:"owner_id"`
	Seats              int                 `json:"seats"`
	VerificationStatus verification.Status `json:"verification_status"`
}

// VehicleDTO flattens the documents for database operations
type VehicleDTO struct {
	ID                 uuid.UUID `db:"id"`
	OwnerID            uuid.UUID `db:"owner_id"`
	Make               string    `db:"make"`
	Model              string    `db:"model"`
	Year               int       `db:"year"`
	Plate              string    `db:"plate"`
	Color              string    `db:"color"`
	Seats              int       `db:"seats"`
	OwnershipURL       string    `db:"ownership_url"`
	OwnershipStatus    string    `db:"ownership_status"`
	OwnershipNote      string    `db:"ownership_note"`
	InsuranceURL       string    `db:"insurance_url"`
	InsuranceStatus    string    `db:"insurance_status"`
	InsuranceNote      string    `db:"insurance_note"`
	InspectionURL      string    `db:"inspection_url"`
	InspectionStatus   string    `db:"inspection_status"`
	InspectionNote     string    `db:"inspection_note"`
	VerificationStatus string    `db:"verification_status"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// ToDTO converts a Vehicle to a VehicleDTO
func (v *Vehicle) ToDTO() *VehicleDTO {
	return &VehicleDTO{
		ID:                 v.ID,
		OwnerID:            v.OwnerID,
		Make:               v.Make,
		Model:              v.Model,
		Year:               v.Year,
		Plate:              v.Plate,
		Color:              v.Color,
		Seats:              v.Seats,
		OwnershipURL:       v.Ownership.URL,
		OwnershipStatus:    string(v.Ownership.Status),
		OwnershipNote:      v.Ownership.Note,
		InsuranceURL:       v.Insurance.URL,
		InsuranceStatus:    string(v.Insurance.Status),
		InsuranceNote:      v.Insurance.Note,
		InspectionURL:      v.Inspection.URL,
		InspectionStatus:   string(v.Inspection.Status),
		InspectionNote:     v.Inspection.Note,
		VerificationStatus: string(v.VerificationStatus),
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// ToVehicle converts a VehicleDTO back to a Vehicle. Unknown statuses read
// from storage default to pending.
func (d *VehicleDTO) ToVehicle() *Vehicle {
	v := &Vehicle{
		ID:         d.ID,
		OwnerID:    d.OwnerID,
		Make:       d.Make,
		Model:      d.Model,
		Year:       d.Year,
		Plate:      d.Plate,
		Color:      d.Color,
		Seats:      d.Seats,
		Ownership:  Document{URL: d.OwnershipURL, Status: statusOrPending(d.OwnershipStatus), Note: d.OwnershipNote},
		Insurance:  Document{URL: d.InsuranceURL, Status: statusOrPending(d.InsuranceStatus), Note: d.InsuranceNote},
		Inspection: Document{URL: d.InspectionURL, Status: statusOrPending(d.InspectionStatus), Note: d.InspectionNote},
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	v.RecomputeVerification()
	return v
}

func statusOrPending(raw string) verification.Status {
	if s := verification.Status(raw); s.Valid() {
		return s
	}
	return verification.StatusPending
}
