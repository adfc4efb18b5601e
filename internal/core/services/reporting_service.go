package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/finassoc/association_finance_app/internal/middleware"
)

// reportingService computes the dashboard aggregates.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GetDashboardSummary computes the landing dashboard figures.
func (s *reportingService) GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	summary, err := s.reportingRepo.GetDashboardSummary(ctx, time.Now().UTC())
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to compute dashboard summary: %w", err)
	}

	resp := dto.ToDashboardSummaryResponse(summary)
	return &resp, nil
}
