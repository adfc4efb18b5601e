package dto

import (
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateObligationRequest defines the data needed to create a payable or receivable.
// A recurring request fans out into installmentCount obligations one calendar
// month apart, the first carrying the requested status and the rest pending.
type CreateObligationRequest struct {
	Kind             domain.ObligationKind `json:"kind" binding:"required,oneof=PAYABLE RECEIVABLE"`
	CounterpartyID   string                `json:"counterpartyID" binding:"required"`
	BeneficiaryID    *string               `json:"beneficiaryID"`
	Category         string                `json:"category" binding:"required"`
	AccountID        string                `json:"accountID" binding:"required"`
	IssueDate        time.Time             `json:"issueDate" binding:"required"`
	DueDate          time.Time             `json:"dueDate" binding:"required"`
	Amount           decimal.Decimal       `json:"amount" binding:"required,dgt0"`
	PaymentMethod    string                `json:"paymentMethod"`
	Notes            string                `json:"notes"`
	Settled          bool                  `json:"settled"`
	SettlementDate   *time.Time            `json:"settlementDate"`
	IsRecurring      bool                  `json:"isRecurring"`
	InstallmentCount int                   `json:"installmentCount" binding:"omitempty,min=2,max=60"`
}

// UpdateObligationRequest defines the data allowed for updating an obligation.
// Use pointers to distinguish between zero-value updates and fields not provided.
// Changing status between PENDING and SETTLED routes through the settlement and
// reversal paths so the ledger stays consistent.
type UpdateObligationRequest struct {
	CounterpartyID *string                  `json:"counterpartyID"`
	BeneficiaryID  *string                  `json:"beneficiaryID"`
	Category       *string                  `json:"category"`
	AccountID      *string                  `json:"accountID"`
	IssueDate      *time.Time               `json:"issueDate"`
	DueDate        *time.Time               `json:"dueDate"`
	Amount         *decimal.Decimal         `json:"amount"`
	PaymentMethod  *string                  `json:"paymentMethod"`
	Notes          *string                  `json:"notes"`
	Status         *domain.ObligationStatus `json:"status" binding:"omitempty,oneof=PENDING SETTLED"`
	SettlementDate *time.Time               `json:"settlementDate"`
}

// SettleObligationRequest defines the data for settling a pending obligation.
type SettleObligationRequest struct {
	SettlementDate *time.Time `json:"settlementDate"`
	PaymentMethod  *string    `json:"paymentMethod"`
	AccountID      *string    `json:"accountID"`
}

// ListObligationsParams defines query parameters for listing obligations.
type ListObligationsParams struct {
	Kind     *domain.ObligationKind   `form:"kind"`
	Status   *domain.ObligationStatus `form:"status"`
	DueFrom  *time.Time               `form:"dueFrom" time_format:"2006-01-02"`
	DueUntil *time.Time               `form:"dueUntil" time_format:"2006-01-02"`
	Limit    int                      `form:"limit,default=50"`
	Offset   int                      `form:"offset,default=0"`
}

// ObligationResponse defines the data returned for an obligation.
type ObligationResponse struct {
	ObligationID      string                  `json:"obligationID"`
	Kind              domain.ObligationKind   `json:"kind"`
	CounterpartyID    string                  `json:"counterpartyID"`
	BeneficiaryID     *string                 `json:"beneficiaryID,omitempty"`
	Status            domain.ObligationStatus `json:"status"`
	Category          string                  `json:"category"`
	AccountID         string                  `json:"accountID"`
	IssueDate         time.Time               `json:"issueDate"`
	DueDate           time.Time               `json:"dueDate"`
	SettlementDate    *time.Time              `json:"settlementDate,omitempty"`
	Amount            decimal.Decimal         `json:"amount"`
	PaymentMethod     string                  `json:"paymentMethod,omitempty"`
	Notes             string                  `json:"notes,omitempty"`
	IsRecurring       bool                    `json:"isRecurring"`
	InstallmentIndex  int                     `json:"installmentIndex"`
	InstallmentCount  int                     `json:"installmentCount"`
	RecurrenceGroupID *string                 `json:"recurrenceGroupID,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	CreatedBy         string                  `json:"createdBy"`
	LastUpdatedAt     time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy     string                  `json:"lastUpdatedBy"`
}

// ListObligationsResponse wraps the list of obligations.
type ListObligationsResponse struct {
	Obligations []ObligationResponse `json:"obligations"`
}

// ToObligationResponse converts a domain.Obligation to ObligationResponse DTO
func ToObligationResponse(o *domain.Obligation) ObligationResponse {
	return ObligationResponse{
		ObligationID:      o.ObligationID,
		Kind:              o.Kind,
		CounterpartyID:    o.CounterpartyID,
		BeneficiaryID:     o.BeneficiaryID,
		Status:            o.Status,
		Category:          o.Category,
		AccountID:         o.AccountID,
		IssueDate:         o.IssueDate,
		DueDate:           o.DueDate,
		SettlementDate:    o.SettlementDate,
		Amount:            o.Amount,
		PaymentMethod:     o.PaymentMethod,
		Notes:             o.Notes,
		IsRecurring:       o.IsRecurring,
		InstallmentIndex:  o.InstallmentIndex,
		InstallmentCount:  o.InstallmentCount,
		RecurrenceGroupID: o.RecurrenceGroupID,
		CreatedAt:         o.CreatedAt,
		CreatedBy:         o.CreatedBy,
		LastUpdatedAt:     o.LastUpdatedAt,
		LastUpdatedBy:     o.LastUpdatedBy,
	}
}

// ToListObligationsResponse converts a slice of domain.Obligation to ListObligationsResponse
func ToListObligationsResponse(os []domain.Obligation) ListObligationsResponse {
	res := make([]ObligationResponse, len(os))
	for i, o := range os {
		res[i] = ToObligationResponse(&o)
	}
	return ListObligationsResponse{Obligations: res}
}
