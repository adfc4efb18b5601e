package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ObligationKind distinguishes money the association owes from money it is owed.
type ObligationKind string

const (
	Payable    ObligationKind = "PAYABLE"
	Receivable ObligationKind = "RECEIVABLE"
)

// ObligationStatus is the lifecycle state of an obligation.
type ObligationStatus string

const (
	Pending ObligationStatus = "PENDING"
	Settled ObligationStatus = "SETTLED"
)

// Obligation is a payable or receivable tracked from pending to settled.
// Settling produces exactly one ledger movement and one balance adjustment;
// reverting or deleting a settled obligation removes them again.
//
// Recurring obligations fan out into installments that share a
// RecurrenceGroupID, with InstallmentIndex running 1..InstallmentCount and
// due dates advancing by calendar months.
type Obligation struct {
	ObligationID   string           `json:"obligationID"`
	Kind           ObligationKind   `json:"kind"`
	CounterpartyID string           `json:"counterpartyID"`
	BeneficiaryID  *string          `json:"beneficiaryID,omitempty"` // payables only
	Status         ObligationStatus `json:"status"`
	Category       string           `json:"category"`
	AccountID      string           `json:"accountID"`
	IssueDate      time.Time        `json:"issueDate"`
	DueDate        time.Time        `json:"dueDate"`
	SettlementDate *time.Time       `json:"settlementDate,omitempty"`
	Amount         decimal.Decimal  `json:"amount"`
	PaymentMethod  string           `json:"paymentMethod,omitempty"` // payables only
	Notes          string           `json:"notes"`

	IsRecurring       bool    `json:"isRecurring"`
	InstallmentIndex  int     `json:"installmentIndex"`
	InstallmentCount  int     `json:"installmentCount"`
	RecurrenceGroupID *string `json:"recurrenceGroupID,omitempty"`

	AuditFields
}

// MovementDirection returns the ledger direction a settlement of this
// obligation produces: payables pay money out, receivables bring it in.
func (o Obligation) MovementDirection() MovementDirection {
	if o.Kind == Payable {
		return Out
	}
	return In
}

// OriginType returns the movement origin tag for this obligation kind.
func (o Obligation) OriginType() OriginType {
	if o.Kind == Payable {
		return OriginPayable
	}
	return OriginReceivable
}
