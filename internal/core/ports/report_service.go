package ports

import (
	"context"

	"github.com/sos-cl/incident-map/internal/core/domain"
)

// CoordinatesInput holds the map pin chosen for a report.
type CoordinatesInput struct {
	Lat float64 `validate:"latitude"`
	Lng float64 `validate:"longitude"`
}

// SubmitReportInput carries the report form fields.
type SubmitReportInput struct {
	Title       string           `validate:"required,min=5"`
	CrimeType   string           `validate:"required,oneof=ROBBERY DOMESTIC_VIOLENCE FIGHT HOMICIDE SEXUAL_ABUSE THREATS THEFT DRUGS ALCOHOL NOISE OTHER"`
	Description string           `validate:"required,min=10"`
	Address     string           `validate:"required,min=5"`
	Phone       string           `validate:"required,min=8"`
	Location    CoordinatesInput
}

// ReportService defines use-case operations over the report ledger.
// List results redact the contact phone unless the current session may view
// contact information.
type ReportService interface {
	// Submit appends a new ACTIVE report created by the current session.
	Submit(ctx context.Context, input SubmitReportInput) (*domain.Report, error)
	// Close transitions a report to CLOSED, recording closer and narrative.
	// Restricted to moderators and administrators; re-closing is rejected.
	Close(ctx context.Context, reportID, closureReport string) error
	// ListActive returns ACTIVE reports in ledger order. Anonymous callers
	// are allowed: this feeds the public map.
	ListActive(ctx context.Context) ([]domain.Report, error)
	// ListAll returns every report in ledger order.
	ListAll(ctx context.Context) ([]domain.Report, error)
	// ListByCreator returns the given user's reports in ledger order.
	ListByCreator(ctx context.Context, userID string) ([]domain.Report, error)
}
