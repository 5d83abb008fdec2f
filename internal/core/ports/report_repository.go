package ports

import (
	"context"

	"github.com/sos-cl/incident-map/internal/core/domain"
)

// ListReportsFilter carries the query parameters for listing reports.
// Zero values mean "no filter"; results always preserve ledger order.
type ListReportsFilter struct {
	Status    domain.ReportStatus // optional: filter by lifecycle state
	CreatedBy string              // optional: filter by creator's user id
}

// ReportRepository defines the storage operations of the report ledger.
// The ledger is append-only except for the status transition applied
// through Update; it performs no authorization of its own.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	FindByID(ctx context.Context, id string) (*domain.Report, error)
	// Update replaces the stored report identified by report.ID. Fails with
	// domain.ErrReportNotFound when the id is absent.
	Update(ctx context.Context, report *domain.Report) error
	List(ctx context.Context, filter ListReportsFilter) ([]domain.Report, error)
}
