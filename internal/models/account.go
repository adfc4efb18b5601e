package models

import (
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes physical cash boxes from bank accounts.
type AccountKind string

const (
	Cash AccountKind = "CASH"
	Bank AccountKind = "BANK"
)

// Account mirrors a row of the accounts table.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Kind           AccountKind     `db:"kind"`
	Notes          string          `db:"notes"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	AuditFields
}
