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
	"github.com/shopspring/decimal"
)

const (
	adjustmentCategory       = "Ajuste"
	depositDescription       = "Depósito manual"
	withdrawalDescription    = "Retirada manual"
	defaultMovementPageLimit = 50
)

// ledgerService provides read access to the movement ledger plus the manual
// balance adjustment and full reset operations.
type ledgerService struct {
	movementRepo portsrepo.MovementRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(movementRepo portsrepo.MovementRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		movementRepo: movementRepo,
		accountRepo:  accountRepo,
	}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetMovementByID retrieves a specific movement by its ID.
func (s *ledgerService) GetMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, movementID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find movement by ID", slog.String("error", err.Error()), slog.String("movement_id", movementID))
		}
		return nil, err
	}
	return movement, nil
}

// GetMovementsByOrigin retrieves the movements produced by an origin record.
func (s *ledgerService) GetMovementsByOrigin(ctx context.Context, originType domain.OriginType, originID string) ([]domain.Movement, error) {
	movements, err := s.movementRepo.FindMovementsByOrigin(ctx, originType, originID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to find movements by origin", slog.String("error", err.Error()), slog.String("origin_type", string(originType)), slog.String("origin_id", originID))
		return nil, fmt.Errorf("failed to find movements for origin %s/%s: %w", originType, originID, err)
	}
	return movements, nil
}

// ListMovements retrieves a paginated list of movements, newest first.
func (s *ledgerService) ListMovements(ctx context.Context, params dto.ListMovementsParams) (*dto.ListMovementsResponse, error) {
	limit := defaultMovementPageLimit
	if params.Limit != nil && *params.Limit > 0 {
		limit = *params.Limit
	}

	movements, nextToken, err := s.movementRepo.ListMovements(ctx, params.AccountID, limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to list movements", slog.String("error", err.Error()))
		}
		return nil, err
	}

	return &dto.ListMovementsResponse{
		Movements: dto.ToMovementResponses(movements),
		NextToken: nextToken,
	}, nil
}

// AdjustAccountBalance records a manual deposit or withdrawal against an
// account. A withdrawal that would take the current balance below zero is
// rejected with ErrInsufficientBalance and leaves the ledger untouched; the
// floor is enforced under the account row lock inside the movement write, so
// concurrent withdrawals cannot slip past it.
func (s *ledgerService) AdjustAccountBalance(ctx context.Context, accountID string, req dto.AdjustBalanceRequest, requestingUserID string) (*domain.Movement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: adjustment amount must be greater than zero", apperrors.ErrInvalidAmount)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	description := req.Description
	if description == "" {
		if req.Direction == domain.Out {
			description = withdrawalDescription
		} else {
			description = depositDescription
		}
	}

	now := time.Now().UTC()
	movement := domain.Movement{
		MovementID:  uuid.NewString(),
		AccountID:   accountID,
		Direction:   req.Direction,
		Amount:      req.Amount,
		OccurredAt:  now,
		Description: description,
		Category:    adjustmentCategory,
		OriginType:  domain.OriginAdjustment,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		if errors.Is(err, apperrors.ErrInsufficientBalance) {
			return nil, err
		}
		logger.Error("Failed to save adjustment movement", slog.String("error", err.Error()), slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to save adjustment movement: %w", err)
	}

	logger.Info("Account balance adjusted",
		slog.String("account_id", accountID),
		slog.String("direction", string(req.Direction)),
		slog.String("amount", req.Amount.String()),
	)
	return &movement, nil
}

// ResetAllBalances zeroes every account balance and deletes all movements.
func (s *ledgerService) ResetAllBalances(ctx context.Context, requestingUserID string) (*dto.ResetLedgerResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountsReset, movementsDeleted, err := s.movementRepo.ResetLedger(ctx, requestingUserID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to reset ledger", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to reset ledger: %w", err)
	}

	logger.Info("Ledger reset",
		slog.Int64("accounts_reset", accountsReset),
		slog.Int64("movements_deleted", movementsDeleted),
		slog.String("requested_by", requestingUserID),
	)
	return &dto.ResetLedgerResponse{
		AccountsReset:    accountsReset,
		MovementsDeleted: movementsDeleted,
	}, nil
}
