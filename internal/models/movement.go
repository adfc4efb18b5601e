package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement mirrors a row of the movements table. The partial unique index on
// (origin_type, origin_id) backs the at-most-one-movement-per-origin rule.
type Movement struct {
	MovementID  string          `db:"movement_id"`
	AccountID   string          `db:"account_id"`
	Direction   string          `db:"direction"`
	Amount      decimal.Decimal `db:"amount"`
	OccurredAt  time.Time       `db:"occurred_at"`
	Description string          `db:"description"`
	Category    string          `db:"category"`
	OriginType  string          `db:"origin_type"`
	OriginID    *string         `db:"origin_id"`
	Notes       string          `db:"notes"`
	AuditFields
}
