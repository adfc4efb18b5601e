package services

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/dto"
)

// ReportingService defines aggregate read operations for the dashboard.
type ReportingService interface {
	// GetDashboardSummary computes the landing dashboard figures.
	GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryResponse, error)
}
