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

const donationCategory = "Doação"

// donationService manages the donation lifecycle. A donation only touches the
// ledger while it is marked received; flipping the flag in either direction
// records or removes the inflow movement so balances always match.
type donationService struct {
	donationRepo portsrepo.DonationRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
}

// NewDonationService creates a new DonationService.
func NewDonationService(donationRepo portsrepo.DonationRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.DonationSvcFacade {
	return &donationService{
		donationRepo: donationRepo,
		accountRepo:  accountRepo,
	}
}

// Ensure donationService implements the portssvc.DonationSvcFacade interface
var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// inflowMovement builds the ledger movement a received donation produces.
func inflowMovement(d domain.Donation, userID string) domain.Movement {
	now := time.Now().UTC()
	originID := d.DonationID
	return domain.Movement{
		MovementID:  uuid.NewString(),
		AccountID:   d.AccountID,
		Direction:   domain.In,
		Amount:      d.Amount,
		OccurredAt:  d.Date,
		Description: "Doação - " + d.DonorName,
		Category:    donationCategory,
		OriginType:  domain.OriginDonation,
		OriginID:    &originID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// CreateDonation persists a new donation, recording the inflow movement when
// it arrives already received.
func (s *donationService) CreateDonation(ctx context.Context, req dto.CreateDonationRequest, creatorUserID string) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: donation amount must be greater than zero", apperrors.ErrInvalidAmount)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, req.AccountID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	donation := domain.Donation{
		DonationID: uuid.NewString(),
		DonorName:  req.DonorName,
		Whatsapp:   req.Whatsapp,
		Amount:     req.Amount,
		AccountID:  req.AccountID,
		Date:       req.Date,
		Notes:      req.Notes,
		Received:   req.Received,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var movement *domain.Movement
	if donation.Received {
		m := inflowMovement(donation, creatorUserID)
		movement = &m
	}

	if err := s.donationRepo.SaveDonation(ctx, donation, movement); err != nil {
		logger.Error("Failed to save donation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save donation: %w", err)
	}

	logger.Info("Donation created",
		slog.String("donation_id", donation.DonationID),
		slog.Bool("received", donation.Received),
	)
	return &donation, nil
}

// UpdateDonation applies a partial update. Any edit that changes what the
// ledger should show for a received donation (amount, account, the received
// flag itself) reverses the old movement and records a fresh one.
func (s *donationService) UpdateDonation(ctx context.Context, donationID string, req dto.UpdateDonationRequest, requestingUserID string) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	current, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: donation amount must be greater than zero", apperrors.ErrInvalidAmount)
	}

	updated := *current
	ledgerAffecting := false

	if req.DonorName != nil && *req.DonorName != updated.DonorName {
		updated.DonorName = *req.DonorName
		ledgerAffecting = true
	}
	if req.Whatsapp != nil {
		updated.Whatsapp = *req.Whatsapp
	}
	if req.Amount != nil && !req.Amount.Equal(updated.Amount) {
		updated.Amount = *req.Amount
		ledgerAffecting = true
	}
	if req.AccountID != nil && *req.AccountID != updated.AccountID {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
			return nil, err
		}
		updated.AccountID = *req.AccountID
		ledgerAffecting = true
	}
	if req.Date != nil && !req.Date.Equal(updated.Date) {
		updated.Date = *req.Date
		ledgerAffecting = true
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if req.Received != nil {
		updated.Received = *req.Received
	}

	now := time.Now().UTC()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = requestingUserID

	// The old movement is reversed whenever the donation was received and its
	// ledger footprint no longer matches; a new one is recorded whenever the
	// updated donation should be on the ledger but is not.
	reverseMovements := current.Received && (!updated.Received || ledgerAffecting)
	var movement *domain.Movement
	if updated.Received && (!current.Received || reverseMovements) {
		m := inflowMovement(updated, requestingUserID)
		movement = &m
	}

	if err := s.donationRepo.UpdateDonation(ctx, updated, movement, reverseMovements, requestingUserID, now); err != nil {
		logger.Error("Failed to update donation", slog.String("error", err.Error()), slog.String("donation_id", donationID))
		return nil, fmt.Errorf("failed to update donation: %w", err)
	}

	logger.Info("Donation updated",
		slog.String("donation_id", donationID),
		slog.Bool("received", updated.Received),
	)
	return &updated, nil
}

// DeleteDonation removes a donation, reversing its ledger effect if it was received.
func (s *donationService) DeleteDonation(ctx context.Context, donationID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		return err
	}

	if err := s.donationRepo.DeleteDonation(ctx, donationID, donation.Received, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to delete donation", slog.String("error", err.Error()), slog.String("donation_id", donationID))
		return fmt.Errorf("failed to delete donation: %w", err)
	}

	logger.Info("Donation deleted", slog.String("donation_id", donationID), slog.Bool("was_received", donation.Received))
	return nil
}

// GetDonationByID retrieves a specific donation by its ID.
func (s *donationService) GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	donation, err := s.donationRepo.FindDonationByID(ctx, donationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find donation by ID", slog.String("error", err.Error()), slog.String("donation_id", donationID))
		}
		return nil, err
	}
	return donation, nil
}

// ListDonations retrieves donations matching the filter parameters.
func (s *donationService) ListDonations(ctx context.Context, params dto.ListDonationsParams) (*dto.ListDonationsResponse, error) {
	donations, err := s.donationRepo.ListDonations(ctx, params.Received, params.Limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list donations", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list donations: %w", err)
	}

	resp := dto.ToListDonationsResponse(donations)
	return &resp, nil
}
