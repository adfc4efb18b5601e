package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes physical cash boxes from bank accounts.
type AccountKind string

const (
	Cash AccountKind = "CASH"
	Bank AccountKind = "BANK"
)

// Account represents one of the association's money holdings.
//
// CurrentBalance is derived state: it must equal InitialBalance plus the
// signed sum of all movements referencing this account whenever no operation
// is in flight. Only the ledger engine mutates it, always inside the same
// database transaction as the movement write.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Kind           AccountKind     `json:"kind"`
	Notes          string          `json:"notes"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	AuditFields
}
