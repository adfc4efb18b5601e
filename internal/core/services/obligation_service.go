package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finassoc/association_finance_app/internal/apperrors"
	"github.com/finassoc/association_finance_app/internal/core/domain"
	portsrepo "github.com/finassoc/association_finance_app/internal/core/ports/repositories"
	portssvc "github.com/finassoc/association_finance_app/internal/core/ports/services"
	"github.com/finassoc/association_finance_app/internal/dto"
	"github.com/finassoc/association_finance_app/internal/middleware"
	"github.com/finassoc/association_finance_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// obligationService drives the payable and receivable lifecycle: creation
// (including the monthly recurrence fan-out), settlement, reversal, partial
// updates and deletion. Every transition keeps the movement ledger and the
// account balances in step.
type obligationService struct {
	obligationRepo  portsrepo.ObligationRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	partyRepo       portsrepo.PartyRepositoryFacade
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
}

// NewObligationService creates a new ObligationService.
func NewObligationService(
	obligationRepo portsrepo.ObligationRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	partyRepo portsrepo.PartyRepositoryFacade,
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade,
) portssvc.ObligationSvcFacade {
	return &obligationService{
		obligationRepo:  obligationRepo,
		accountRepo:     accountRepo,
		partyRepo:       partyRepo,
		beneficiaryRepo: beneficiaryRepo,
	}
}

// Ensure obligationService implements the portssvc.ObligationSvcFacade interface
var _ portssvc.ObligationSvcFacade = (*obligationService)(nil)

// settlementMovement builds the single ledger movement a settlement produces.
// Payables describe who was paid (and on whose behalf); receivables describe
// what came in. A name lookup that comes back empty falls back to a generic
// label instead of blocking the settlement.
func (s *obligationService) settlementMovement(ctx context.Context, o domain.Obligation, settlementDate time.Time, userID string) (domain.Movement, error) {
	var description string
	if o.Kind == domain.Payable {
		counterpartyName := "Fornecedor"
		counterparty, err := s.partyRepo.FindPartyByID(ctx, o.CounterpartyID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return domain.Movement{}, fmt.Errorf("failed to resolve counterparty %s: %w", o.CounterpartyID, err)
			}
		} else {
			counterpartyName = counterparty.Name
		}
		description = "Pagamento - " + counterpartyName
		if o.BeneficiaryID != nil {
			beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, *o.BeneficiaryID)
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					return domain.Movement{}, fmt.Errorf("failed to resolve beneficiary %s: %w", *o.BeneficiaryID, err)
				}
			} else {
				description += " (para " + beneficiary.Name + ")"
			}
		}
	} else {
		description = "Recebimento - " + o.Category
	}

	now := time.Now().UTC()
	originID := o.ObligationID
	return domain.Movement{
		MovementID:  uuid.NewString(),
		AccountID:   o.AccountID,
		Direction:   o.MovementDirection(),
		Amount:      o.Amount,
		OccurredAt:  settlementDate,
		Description: description,
		Category:    o.Category,
		OriginType:  o.OriginType(),
		OriginID:    &originID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}, nil
}

// validateReferences checks that the counterparty, account and optional
// beneficiary referenced by a new obligation exist.
func (s *obligationService) validateReferences(ctx context.Context, counterpartyID, accountID string, beneficiaryID *string) error {
	if _, err := s.partyRepo.FindPartyByID(ctx, counterpartyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: counterparty %s", apperrors.ErrNotFound, counterpartyID)
		}
		return err
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return err
	}
	if beneficiaryID != nil {
		if _, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, *beneficiaryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: beneficiary %s", apperrors.ErrNotFound, *beneficiaryID)
			}
			return err
		}
	}
	return nil
}

// CreateObligation persists a new payable or receivable. A recurring request
// fans out into installmentCount obligations sharing a recurrence group, with
// issue and due dates both advanced one calendar month per installment
// (clamped to month ends) and every installment after the first forced pending.
func (s *obligationService) CreateObligation(ctx context.Context, req dto.CreateObligationRequest, creatorUserID string) ([]domain.Obligation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: obligation amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if req.Kind != domain.Payable && req.BeneficiaryID != nil {
		return nil, fmt.Errorf("%w: only payables can have a beneficiary", apperrors.ErrValidation)
	}
	if err := s.validateReferences(ctx, req.CounterpartyID, req.AccountID, req.BeneficiaryID); err != nil {
		return nil, err
	}

	installments := 1
	var recurrenceGroupID *string
	if req.IsRecurring {
		if req.InstallmentCount < 2 {
			return nil, fmt.Errorf("%w: recurring obligations need at least 2 installments", apperrors.ErrValidation)
		}
		installments = req.InstallmentCount
		groupID := uuid.NewString()
		recurrenceGroupID = &groupID
	}

	now := time.Now().UTC()
	obligations := make([]domain.Obligation, installments)
	for i := 0; i < installments; i++ {
		obligations[i] = domain.Obligation{
			ObligationID:      uuid.NewString(),
			Kind:              req.Kind,
			CounterpartyID:    req.CounterpartyID,
			BeneficiaryID:     req.BeneficiaryID,
			Status:            domain.Pending,
			Category:          req.Category,
			AccountID:         req.AccountID,
			IssueDate:         dates.AddMonths(req.IssueDate, i),
			DueDate:           dates.AddMonths(req.DueDate, i),
			Amount:            req.Amount,
			PaymentMethod:     req.PaymentMethod,
			Notes:             req.Notes,
			IsRecurring:       req.IsRecurring,
			InstallmentIndex:  i + 1,
			InstallmentCount:  installments,
			RecurrenceGroupID: recurrenceGroupID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUserID,
			},
		}
	}

	if err := s.obligationRepo.SaveObligations(ctx, obligations); err != nil {
		logger.Error("Failed to save obligations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save obligations: %w", err)
	}

	// Only the first installment may arrive already settled; the generator
	// forces the rest pending.
	if req.Settled {
		settlementDate := now
		if req.SettlementDate != nil {
			settlementDate = *req.SettlementDate
		}
		settled, err := s.settle(ctx, obligations[0], settlementDate, obligations[0].AccountID, obligations[0].PaymentMethod, creatorUserID)
		if err != nil {
			return nil, err
		}
		obligations[0] = *settled
	}

	logger.Info("Obligation created",
		slog.String("obligation_id", obligations[0].ObligationID),
		slog.String("kind", string(req.Kind)),
		slog.Int("installments", installments),
	)
	return obligations, nil
}

// settle performs the pending to settled transition, recording the movement.
func (s *obligationService) settle(ctx context.Context, o domain.Obligation, settlementDate time.Time, accountID string, paymentMethod string, userID string) (*domain.Obligation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if accountID != o.AccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	o.Status = domain.Settled
	o.SettlementDate = &settlementDate
	o.AccountID = accountID
	o.PaymentMethod = paymentMethod
	o.LastUpdatedAt = now
	o.LastUpdatedBy = userID

	movement, err := s.settlementMovement(ctx, o, settlementDate, userID)
	if err != nil {
		return nil, err
	}

	if err := s.obligationRepo.SettleObligation(ctx, o, movement); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// A concurrent settle won the race. Idempotent outcome: return the
			// stored state instead of failing.
			return s.obligationRepo.FindObligationByID(ctx, o.ObligationID)
		}
		logger.Error("Failed to settle obligation", slog.String("error", err.Error()), slog.String("obligation_id", o.ObligationID))
		return nil, fmt.Errorf("failed to settle obligation: %w", err)
	}

	logger.Info("Obligation settled",
		slog.String("obligation_id", o.ObligationID),
		slog.String("movement_id", movement.MovementID),
	)
	return &o, nil
}

// SettleObligation marks a pending obligation settled. Settling an already
// settled obligation is a no-op that returns the stored state unchanged.
func (s *obligationService) SettleObligation(ctx context.Context, obligationID string, req dto.SettleObligationRequest, requestingUserID string) (*domain.Obligation, error) {
	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	if obligation.Status == domain.Settled {
		return obligation, nil
	}

	settlementDate := time.Now().UTC()
	if req.SettlementDate != nil {
		settlementDate = *req.SettlementDate
	}
	accountID := obligation.AccountID
	if req.AccountID != nil {
		accountID = *req.AccountID
	}
	paymentMethod := obligation.PaymentMethod
	if req.PaymentMethod != nil {
		paymentMethod = *req.PaymentMethod
	}

	return s.settle(ctx, *obligation, settlementDate, accountID, paymentMethod, requestingUserID)
}

// RevertObligationToPending returns a settled obligation to pending, removing
// the movements it produced. Reverting a pending obligation is a no-op.
func (s *obligationService) RevertObligationToPending(ctx context.Context, obligationID string, requestingUserID string) (*domain.Obligation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	if obligation.Status == domain.Pending {
		return obligation, nil
	}

	if err := s.obligationRepo.RevertObligation(ctx, *obligation, requestingUserID, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return s.obligationRepo.FindObligationByID(ctx, obligationID)
		}
		logger.Error("Failed to revert obligation", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
		return nil, fmt.Errorf("failed to revert obligation: %w", err)
	}

	logger.Info("Obligation reverted to pending", slog.String("obligation_id", obligationID))
	return s.obligationRepo.FindObligationByID(ctx, obligationID)
}

// UpdateObligation applies a partial update. Transitions between pending and
// settled route through the settlement and reversal paths, and ledger-affecting
// edits (amount, account) on a settled obligation are re-settled so the stored
// movement always mirrors the obligation.
func (s *obligationService) UpdateObligation(ctx context.Context, obligationID string, req dto.UpdateObligationRequest, requestingUserID string) (*domain.Obligation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	current, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: obligation amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if req.BeneficiaryID != nil && current.Kind != domain.Payable {
		return nil, fmt.Errorf("%w: only payables can have a beneficiary", apperrors.ErrValidation)
	}

	updated := *current
	ledgerAffecting := false

	if req.CounterpartyID != nil && *req.CounterpartyID != updated.CounterpartyID {
		if _, err := s.partyRepo.FindPartyByID(ctx, *req.CounterpartyID); err != nil {
			return nil, err
		}
		updated.CounterpartyID = *req.CounterpartyID
		ledgerAffecting = true
	}
	if req.BeneficiaryID != nil {
		if _, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, *req.BeneficiaryID); err != nil {
			return nil, err
		}
		updated.BeneficiaryID = req.BeneficiaryID
		ledgerAffecting = true
	}
	if req.Category != nil {
		updated.Category = *req.Category
		ledgerAffecting = true
	}
	if req.AccountID != nil && *req.AccountID != updated.AccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
			return nil, err
		}
		updated.AccountID = *req.AccountID
		ledgerAffecting = true
	}
	if req.Amount != nil && !req.Amount.Equal(updated.Amount) {
		updated.Amount = *req.Amount
		ledgerAffecting = true
	}
	if req.IssueDate != nil {
		updated.IssueDate = *req.IssueDate
	}
	if req.DueDate != nil {
		updated.DueDate = *req.DueDate
	}
	if req.PaymentMethod != nil {
		updated.PaymentMethod = *req.PaymentMethod
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}

	targetStatus := current.Status
	if req.Status != nil {
		targetStatus = *req.Status
	}

	now := time.Now().UTC()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = requestingUserID

	// A settled obligation whose ledger-affecting fields change, or which is
	// being reverted, sheds its movement first.
	needsRevert := current.Status == domain.Settled &&
		(targetStatus == domain.Pending || ledgerAffecting)
	if needsRevert {
		if err := s.obligationRepo.RevertObligation(ctx, *current, requestingUserID, now); err != nil && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to revert obligation during update", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
			return nil, fmt.Errorf("failed to revert obligation during update: %w", err)
		}
		updated.Status = domain.Pending
		updated.SettlementDate = nil
	}

	if err := s.obligationRepo.UpdateObligation(ctx, updated); err != nil {
		logger.Error("Failed to update obligation", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
		return nil, fmt.Errorf("failed to update obligation: %w", err)
	}

	if targetStatus == domain.Settled && updated.Status == domain.Pending {
		settlementDate := now
		if req.SettlementDate != nil {
			settlementDate = *req.SettlementDate
		} else if current.SettlementDate != nil {
			settlementDate = *current.SettlementDate
		}
		return s.settle(ctx, updated, settlementDate, updated.AccountID, updated.PaymentMethod, requestingUserID)
	}

	logger.Info("Obligation updated", slog.String("obligation_id", obligationID))
	return s.obligationRepo.FindObligationByID(ctx, obligationID)
}

// DeleteObligation removes an obligation, reversing its ledger effect if it
// was settled.
func (s *obligationService) DeleteObligation(ctx context.Context, obligationID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		return err
	}

	if err := s.obligationRepo.DeleteObligation(ctx, *obligation, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to delete obligation", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
		return fmt.Errorf("failed to delete obligation: %w", err)
	}

	logger.Info("Obligation deleted", slog.String("obligation_id", obligationID), slog.String("was_status", string(obligation.Status)))
	return nil
}

// GetObligationByID retrieves a specific obligation by its ID.
func (s *obligationService) GetObligationByID(ctx context.Context, obligationID string) (*domain.Obligation, error) {
	obligation, err := s.obligationRepo.FindObligationByID(ctx, obligationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find obligation by ID", slog.String("error", err.Error()), slog.String("obligation_id", obligationID))
		}
		return nil, err
	}
	return obligation, nil
}

// ListObligations retrieves obligations matching the filter parameters.
func (s *obligationService) ListObligations(ctx context.Context, params dto.ListObligationsParams) (*dto.ListObligationsResponse, error) {
	filters := portsrepo.ObligationListFilters{
		Kind:     params.Kind,
		Status:   params.Status,
		DueFrom:  params.DueFrom,
		DueUntil: params.DueUntil,
	}

	obligations, err := s.obligationRepo.ListObligations(ctx, filters, params.Limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list obligations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list obligations: %w", err)
	}

	resp := dto.ToListObligationsResponse(obligations)
	return &resp, nil
}
