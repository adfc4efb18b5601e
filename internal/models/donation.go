package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation mirrors a row of the donations table.
type Donation struct {
	DonationID string          `db:"donation_id"`
	DonorName  string          `db:"donor_name"`
	Whatsapp   string          `db:"whatsapp"`
	Amount     decimal.Decimal `db:"amount"`
	AccountID  string          `db:"account_id"`
	Date       time.Time       `db:"date"`
	Notes      string          `db:"notes"`
	Received   bool            `db:"received"`
	AuditFields
}
