package dto

import (
	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse defines the per-account balance line on the dashboard.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
}

// DashboardSummaryResponse defines the aggregate figures for the dashboard.
type DashboardSummaryResponse struct {
	PayableDueToday     decimal.Decimal          `json:"payableDueToday"`
	PayableDueThisMonth decimal.Decimal          `json:"payableDueThisMonth"`
	ReceivableDueToday  decimal.Decimal          `json:"receivableDueToday"`
	ReceivableDueMonth  decimal.Decimal          `json:"receivableDueThisMonth"`
	DonationsThisMonth  decimal.Decimal          `json:"donationsThisMonth"`
	AccountBalances     []AccountBalanceResponse `json:"accountBalances"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary to its DTO.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	balances := make([]AccountBalanceResponse, len(s.AccountBalances))
	for i, b := range s.AccountBalances {
		balances[i] = AccountBalanceResponse{
			AccountID: b.AccountID,
			Name:      b.Name,
			Kind:      string(b.Kind),
			Balance:   b.Balance,
		}
	}
	return DashboardSummaryResponse{
		PayableDueToday:     s.PayableDueToday,
		PayableDueThisMonth: s.PayableDueThisMonth,
		ReceivableDueToday:  s.ReceivableDueToday,
		ReceivableDueMonth:  s.ReceivableDueMonth,
		DonationsThisMonth:  s.DonationsThisMonth,
		AccountBalances:     balances,
	}
}
