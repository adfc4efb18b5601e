package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementDirection indicates whether a movement adds to or subtracts from a balance.
type MovementDirection string

const (
	In  MovementDirection = "IN"
	Out MovementDirection = "OUT"
)

// OriginType identifies the kind of record that caused a movement to exist.
type OriginType string

const (
	OriginPayable    OriginType = "PAYABLE"
	OriginReceivable OriginType = "RECEIVABLE"
	OriginDonation   OriginType = "DONATION"
	OriginAdjustment OriginType = "ADJUSTMENT"
)

// Movement is one ledger entry: a single inflow or outflow against one account.
//
// At most one movement may exist per (OriginType, OriginID) pair; manual
// adjustments carry a nil OriginID and are exempt. Movements are never updated
// in place, only created and deleted.
type Movement struct {
	MovementID  string            `json:"movementID"`
	AccountID   string            `json:"accountID"`
	Direction   MovementDirection `json:"direction"`
	Amount      decimal.Decimal   `json:"amount"` // always positive
	OccurredAt  time.Time         `json:"occurredAt"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	OriginType  OriginType        `json:"originType"`
	OriginID    *string           `json:"originID,omitempty"`
	Notes       string            `json:"notes"`
	AuditFields
}

// SignedAmount returns the movement's effect on its account balance.
func (m Movement) SignedAmount() decimal.Decimal {
	if m.Direction == Out {
		return m.Amount.Neg()
	}
	return m.Amount
}
