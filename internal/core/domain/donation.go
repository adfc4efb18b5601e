package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation is a one-off gift to the association. Received is the binary
// analogue of an obligation's pending/settled status: marking a donation
// received records an IN movement, un-marking or deleting it reverses that
// movement.
type Donation struct {
	DonationID string          `json:"donationID"`
	DonorName  string          `json:"donorName"`
	Whatsapp   string          `json:"whatsapp,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	AccountID  string          `json:"accountID"`
	Date       time.Time       `json:"date"`
	Notes      string          `json:"notes"`
	Received   bool            `json:"received"`
	AuditFields
}
