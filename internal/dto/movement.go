package dto

import (
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListMovementsParams defines query parameters for listing movements.
type ListMovementsParams struct {
	AccountID *string `form:"accountID"`
	Limit     *int    `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// MovementResponse defines the data returned for a ledger movement.
type MovementResponse struct {
	MovementID  string                   `json:"movementID"`
	AccountID   string                   `json:"accountID"`
	Direction   domain.MovementDirection `json:"direction"`
	Amount      decimal.Decimal          `json:"amount"`
	OccurredAt  time.Time                `json:"occurredAt"`
	Description string                   `json:"description"`
	Category    string                   `json:"category"`
	OriginType  domain.OriginType        `json:"originType"`
	OriginID    *string                  `json:"originID,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	CreatedBy   string                   `json:"createdBy"`
}

// ListMovementsResponse wraps a page of movements with the token for the next page.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ResetLedgerResponse reports the effect of a full ledger reset.
type ResetLedgerResponse struct {
	AccountsReset    int64 `json:"accountsReset"`
	MovementsDeleted int64 `json:"movementsDeleted"`
}

// ToMovementResponse converts a domain.Movement to MovementResponse DTO
func ToMovementResponse(m *domain.Movement) MovementResponse {
	return MovementResponse{
		MovementID:  m.MovementID,
		AccountID:   m.AccountID,
		Direction:   m.Direction,
		Amount:      m.Amount,
		OccurredAt:  m.OccurredAt,
		Description: m.Description,
		Category:    m.Category,
		OriginType:  m.OriginType,
		OriginID:    m.OriginID,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ToMovementResponses converts a slice of domain.Movement to []MovementResponse
func ToMovementResponses(ms []domain.Movement) []MovementResponse {
	responses := make([]MovementResponse, len(ms))
	for i, m := range ms {
		responses[i] = ToMovementResponse(&m)
	}
	return responses
}
