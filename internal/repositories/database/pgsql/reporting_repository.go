package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	"github.com/finassoc/association_finance_app/internal/utils/dates"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new repository for dashboard aggregates.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) sumPendingObligations(ctx context.Context, kind domain.ObligationKind, from, until time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM obligations
		WHERE kind = $1 AND status = $2 AND due_date >= $3 AND due_date < $4;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, string(kind), string(domain.Pending), from, until).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending %s obligations: %w", kind, err)
	}
	return total, nil
}

// GetDashboardSummary computes pending obligation totals due today and in the
// month containing today, donations received this month, and account balances.
func (r *ReportingRepository) GetDashboardSummary(ctx context.Context, today time.Time) (*domain.DashboardSummary, error) {
	dayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	monthEnd := dates.AddMonths(monthStart, 1)

	summary := &domain.DashboardSummary{}
	var err error

	if summary.PayableDueToday, err = r.sumPendingObligations(ctx, domain.Payable, dayStart, dayEnd); err != nil {
		return nil, err
	}
	if summary.PayableDueThisMonth, err = r.sumPendingObligations(ctx, domain.Payable, monthStart, monthEnd); err != nil {
		return nil, err
	}
	if summary.ReceivableDueToday, err = r.sumPendingObligations(ctx, domain.Receivable, dayStart, dayEnd); err != nil {
		return nil, err
	}
	if summary.ReceivableDueMonth, err = r.sumPendingObligations(ctx, domain.Receivable, monthStart, monthEnd); err != nil {
		return nil, err
	}

	donationQuery := `
		SELECT COALESCE(SUM(amount), 0)
		FROM donations
		WHERE received = TRUE AND date >= $1 AND date < $2;
	`
	if err := r.Pool.QueryRow(ctx, donationQuery, monthStart, monthEnd).Scan(&summary.DonationsThisMonth); err != nil {
		return nil, fmt.Errorf("failed to sum donations for the month: %w", err)
	}

	balanceQuery := `
		SELECT account_id, name, kind, current_balance
		FROM accounts
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, balanceQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query account balances: %w", err)
	}
	defer rows.Close()

	balances := []domain.AccountBalance{}
	for rows.Next() {
		var b domain.AccountBalance
		if err := rows.Scan(&b.AccountID, &b.Name, &b.Kind, &b.Balance); err != nil {
			return nil, fmt.Errorf("failed to scan account balance row: %w", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account balance rows: %w", err)
	}
	summary.AccountBalances = balances

	return summary, nil
}
