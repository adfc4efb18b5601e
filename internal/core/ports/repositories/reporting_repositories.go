package repositories

import (
	"context"
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// ReportingRepository defines aggregate read operations for the dashboard.
type ReportingRepository interface {
	// GetDashboardSummary computes pending obligation totals due today and in the
	// month containing today, donations received this month, and per-account balances.
	GetDashboardSummary(ctx context.Context, today time.Time) (*domain.DashboardSummary, error)
}
