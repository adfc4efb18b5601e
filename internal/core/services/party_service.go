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
)

// partyService manages supplier and donor records.
type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

// Ensure partyService implements the portssvc.PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty persists a new party.
func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	party := domain.Party{
		PartyID:      uuid.NewString(),
		Kind:         req.Kind,
		Name:         req.Name,
		TaxID:        req.TaxID,
		PostalCode:   req.PostalCode,
		Street:       req.Street,
		StreetNumber: req.StreetNumber,
		District:     req.District,
		City:         req.City,
		State:        req.State,
		Phone:        req.Phone,
		Whatsapp:     req.Whatsapp,
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		logger.Error("Failed to save party", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save party: %w", err)
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("kind", string(party.Kind)))
	return &party, nil
}

// GetPartyByID retrieves a specific party by its ID.
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find party by ID", slog.String("error", err.Error()), slog.String("party_id", partyID))
		}
		return nil, err
	}
	return party, nil
}

// ListParties retrieves parties of the given kind.
func (s *partyService) ListParties(ctx context.Context, kind domain.PartyKind, params dto.ListPartiesParams) (*dto.ListPartiesResponse, error) {
	parties, err := s.partyRepo.ListParties(ctx, kind, params.Limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list parties", slog.String("error", err.Error()), slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	resp := dto.ToListPartiesResponse(parties)
	return &resp, nil
}

// UpdateParty applies a partial update to a party.
func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, requestingUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.TaxID != nil {
		party.TaxID = *req.TaxID
	}
	if req.PostalCode != nil {
		party.PostalCode = *req.PostalCode
	}
	if req.Street != nil {
		party.Street = *req.Street
	}
	if req.StreetNumber != nil {
		party.StreetNumber = *req.StreetNumber
	}
	if req.District != nil {
		party.District = *req.District
	}
	if req.City != nil {
		party.City = *req.City
	}
	if req.State != nil {
		party.State = *req.State
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		party.Whatsapp = *req.Whatsapp
	}
	if req.Notes != nil {
		party.Notes = *req.Notes
	}
	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = requestingUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		logger.Error("Failed to update party", slog.String("error", err.Error()), slog.String("party_id", partyID))
		return nil, fmt.Errorf("failed to update party: %w", err)
	}

	logger.Info("Party updated", slog.String("party_id", partyID))
	return party, nil
}

// DeleteParty removes a party that no obligation references.
func (s *partyService) DeleteParty(ctx context.Context, partyID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.partyRepo.DeleteParty(ctx, partyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete party", slog.String("error", err.Error()), slog.String("party_id", partyID))
		}
		return err
	}

	logger.Info("Party deleted", slog.String("party_id", partyID), slog.String("deleted_by", requestingUserID))
	return nil
}
