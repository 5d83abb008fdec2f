package memory

import (
	"context"
	"sync"

	"github.com/sos-cl/incident-map/internal/core/domain"
	"github.com/sos-cl/incident-map/internal/core/ports"
)

// ReportRepository is the in-memory report ledger: an ordered, append-only
// sequence whose entries mutate only through Update (the status transition).
type ReportRepository struct {
	mu      sync.RWMutex
	reports []domain.Report
	index   map[string]int
}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{index: make(map[string]int)}
}

func (r *ReportRepository) Create(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.index[report.ID] = len(r.reports)
	r.reports = append(r.reports, *report)
	return nil
}

func (r *ReportRepository) FindByID(_ context.Context, id string) (*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	clone := r.reports[i]
	return &clone, nil
}

func (r *ReportRepository) Update(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[report.ID]
	if !ok {
		return domain.ErrReportNotFound
	}
	r.reports[i] = *report
	return nil
}

func (r *ReportRepository) List(_ context.Context, filter ports.ListReportsFilter) ([]domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Report, 0, len(r.reports))
	for _, report := range r.reports {
		if filter.Status != "" && report.Status != filter.Status {
			continue
		}
		if filter.CreatedBy != "" && report.CreatedBy != filter.CreatedBy {
			continue
		}
		out = append(out, report)
	}
	return out, nil
}
