// Package verification holds the document review states of a vehicle and
// the rule that reduces them to a single overall status.
package verification

import "fmt"

// Status is the review state of a single vehicle document
type Status string

const (
	StatusPending     Status = "pending"
	StatusUnderReview Status = "underReview"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

// AllStatuses lists every status in review order
var AllStatuses = []Status{StatusPending, StatusUnderReview, StatusApproved, StatusRejected}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ParseStatus converts a raw value into a Status
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown verification status %q", raw)
	}
	return s, nil
}

// Category names one of the independently reviewed vehicle documents
type Category string

const (
	CategoryOwnership  Category = "ownership"
	CategoryInsurance  Category = "insurance"
	CategoryInspection Category = "inspection"
)

// ParseCategory converts a raw value into a Category
func ParseCategory(raw string) (Category, error) {
	switch c := Category(raw); c {
	case CategoryOwnership, CategoryInsurance, CategoryInspection:
		return c, nil
	}
	return "", fmt.Errorf("unknown document category %q", raw)
}
