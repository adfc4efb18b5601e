package domain

import "github.com/shopspring/decimal"

// AccountBalance is a dashboard line item.
type AccountBalance struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Kind      AccountKind     `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
}

// DashboardSummary aggregates the figures shown on the landing dashboard.
type DashboardSummary struct {
	PayableDueToday     decimal.Decimal  `json:"payableDueToday"`
	PayableDueThisMonth decimal.Decimal  `json:"payableDueThisMonth"`
	ReceivableDueToday  decimal.Decimal  `json:"receivableDueToday"`
	ReceivableDueMonth  decimal.Decimal  `json:"receivableDueThisMonth"`
	DonationsThisMonth  decimal.Decimal  `json:"donationsThisMonth"`
	AccountBalances     []AccountBalance `json:"accountBalances"`
}
