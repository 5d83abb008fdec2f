package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sos-cl/incident-map/internal/core/domain"
	"github.com/sos-cl/incident-map/internal/core/policy"
	"github.com/sos-cl/incident-map/internal/core/ports"
	"github.com/sos-cl/incident-map/internal/metrics"
	"github.com/sos-cl/incident-map/internal/validation"
)

// ReportService implements the report ledger use cases. Authorization is
// decided by the policy table against the current session; the repository
// trusts this layer and performs no checks of its own.
type ReportService struct {
	repo    ports.ReportRepository
	session ports.SessionReader
	logger  zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, session ports.SessionReader, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, session: session, logger: logger}
}

// Submit appends a new ACTIVE report created by the current session user.
func (s *ReportService) Submit(ctx context.Context, input ports.SubmitReportInput) (*domain.Report, error) {
	actor := s.session.Current()
	if !policy.AllowedUser(actor, policy.OpSubmitReport) {
		return nil, domain.ErrForbidden
	}
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ID:          uuid.NewString(),
		Title:       input.Title,
		CrimeType:   domain.CrimeType(input.CrimeType),
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		Location:    domain.Coordinates{Lat: input.Location.Lat, Lng: input.Location.Lng},
		Status:      domain.StatusActive,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   actor.ID,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, err
	}

	metrics.ReportsSubmittedTotal.WithLabelValues(input.CrimeType).Inc()
	metrics.ReportsActive.Inc()
	s.logger.Info().
		Str("report_id", report.ID).
		Str("crime_type", input.CrimeType).
		Str("created_by", actor.ID).
		Msg("report submitted")
	return report, nil
}

// Close transitions a report to CLOSED, recording closer and narrative
// atomically. Re-closing is rejected with domain.ErrReportClosed.
func (s *ReportService) Close(ctx context.Context, reportID, closureReport string) error {
	actor := s.session.Current()
	if !policy.AllowedUser(actor, policy.OpCloseReport) {
		return domain.ErrForbidden
	}
	if strings.TrimSpace(closureReport) == "" {
		return validation.NewFieldError("closure_report", "closure report is required")
	}

	report, err := s.repo.FindByID(ctx, reportID)
	if err != nil {
		return err
	}
	if err := report.Close(actor.ID, closureReport, time.Now().UTC()); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, report); err != nil {
		return err
	}

	metrics.ReportsClosedTotal.Inc()
	metrics.ReportsActive.Dec()
	s.logger.Info().
		Str("report_id", reportID).
		Str("closed_by", actor.ID).
		Msg("report closed")
	return nil
}

// ListActive returns ACTIVE reports in ledger order. Anonymous callers are
// allowed: this feeds the public map.
func (s *ReportService) ListActive(ctx context.Context) ([]domain.Report, error) {
	return s.list(ctx, ports.ListReportsFilter{Status: domain.StatusActive})
}

// ListAll returns every report in ledger order.
func (s *ReportService) ListAll(ctx context.Context) ([]domain.Report, error) {
	return s.list(ctx, ports.ListReportsFilter{})
}

// ListByCreator returns the given user's reports in ledger order.
func (s *ReportService) ListByCreator(ctx context.Context, userID string) ([]domain.Report, error) {
	return s.list(ctx, ports.ListReportsFilter{CreatedBy: userID})
}

func (s *ReportService) list(ctx context.Context, filter ports.ListReportsFilter) ([]domain.Report, error) {
	viewer := s.session.Current()
	if !policy.AllowedUser(viewer, policy.OpViewReports) {
		return nil, domain.ErrForbidden
	}
	reports, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !policy.AllowedUser(viewer, policy.OpViewContactInfo) {
		for i := range reports {
			reports[i].Phone = ""
		}
	}
	return reports, nil
}
