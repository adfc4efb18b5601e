package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Obligation mirrors a row of the obligations table (payables and
// receivables share it, discriminated by kind).
type Obligation struct {
	ObligationID   string          `db:"obligation_id"`
	Kind           string          `db:"kind"`
	CounterpartyID string          `db:"counterparty_id"`
	BeneficiaryID  *string         `db:"beneficiary_id"`
	Status         string          `db:"status"`
	Category       string          `db:"category"`
	AccountID      string          `db:"account_id"`
	IssueDate      time.Time       `db:"issue_date"`
	DueDate        time.Time       `db:"due_date"`
	SettlementDate *time.Time      `db:"settlement_date"`
	Amount         decimal.Decimal `db:"amount"`
	PaymentMethod  string          `db:"payment_method"`
	Notes          string          `db:"notes"`

	IsRecurring       bool    `db:"is_recurring"`
	InstallmentIndex  int     `db:"installment_index"`
	InstallmentCount  int     `db:"installment_count"`
	RecurrenceGroupID *string `db:"recurrence_group_id"`

	AuditFields
}
