package dto

import (
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required"`
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=CASH BANK"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	Notes          string             `json:"notes"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name  *string             `json:"name"`
	Kind  *domain.AccountKind `json:"kind" binding:"omitempty,oneof=CASH BANK"`
	Notes *string             `json:"notes"`
}

// AdjustBalanceRequest defines a manual deposit or withdrawal on an account.
type AdjustBalanceRequest struct {
	Direction   domain.MovementDirection `json:"direction" binding:"required,oneof=IN OUT"`
	Amount      decimal.Decimal          `json:"amount" binding:"required,dgt0"`
	Description string                   `json:"description"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID      string             `json:"accountID"`
	Name           string             `json:"name"`
	Kind           domain.AccountKind `json:"kind"`
	Notes          string             `json:"notes"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
	CurrentBalance decimal.Decimal    `json:"currentBalance"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy  string             `json:"lastUpdatedBy"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Name:           acc.Name,
		Kind:           acc.Kind,
		Notes:          acc.Notes,
		InitialBalance: acc.InitialBalance,
		CurrentBalance: acc.CurrentBalance,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return ListAccountsResponse{Accounts: res}
}
