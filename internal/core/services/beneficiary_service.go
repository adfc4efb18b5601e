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

// beneficiaryService manages the people the association helps.
type beneficiaryService struct {
	beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade
}

// NewBeneficiaryService creates a new BeneficiaryService.
func NewBeneficiaryService(beneficiaryRepo portsrepo.BeneficiaryRepositoryFacade) portssvc.BeneficiarySvcFacade {
	return &beneficiaryService{beneficiaryRepo: beneficiaryRepo}
}

// Ensure beneficiaryService implements the portssvc.BeneficiarySvcFacade interface
var _ portssvc.BeneficiarySvcFacade = (*beneficiaryService)(nil)

// CreateBeneficiary persists a new beneficiary.
func (s *beneficiaryService) CreateBeneficiary(ctx context.Context, req dto.CreateBeneficiaryRequest, creatorUserID string) (*domain.Beneficiary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	beneficiary := domain.Beneficiary{
		BeneficiaryID:    uuid.NewString(),
		Name:             req.Name,
		TaxID:            req.TaxID,
		Whatsapp:         req.Whatsapp,
		PostalCode:       req.PostalCode,
		Street:           req.Street,
		StreetNumber:     req.StreetNumber,
		District:         req.District,
		City:             req.City,
		State:            req.State,
		GuardianName:     req.GuardianName,
		GuardianWhatsapp: req.GuardianWhatsapp,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.beneficiaryRepo.SaveBeneficiary(ctx, beneficiary); err != nil {
		logger.Error("Failed to save beneficiary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save beneficiary: %w", err)
	}

	logger.Info("Beneficiary created", slog.String("beneficiary_id", beneficiary.BeneficiaryID))
	return &beneficiary, nil
}

// GetBeneficiaryByID retrieves a specific beneficiary by its ID.
func (s *beneficiaryService) GetBeneficiaryByID(ctx context.Context, beneficiaryID string) (*domain.Beneficiary, error) {
	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find beneficiary by ID", slog.String("error", err.Error()), slog.String("beneficiary_id", beneficiaryID))
		}
		return nil, err
	}
	return beneficiary, nil
}

// ListBeneficiaries retrieves beneficiaries.
func (s *beneficiaryService) ListBeneficiaries(ctx context.Context, params dto.ListPartiesParams) (*dto.ListBeneficiariesResponse, error) {
	beneficiaries, err := s.beneficiaryRepo.ListBeneficiaries(ctx, params.Limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list beneficiaries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list beneficiaries: %w", err)
	}

	resp := dto.ToListBeneficiariesResponse(beneficiaries)
	return &resp, nil
}

// UpdateBeneficiary applies a partial update to a beneficiary.
func (s *beneficiaryService) UpdateBeneficiary(ctx context.Context, beneficiaryID string, req dto.UpdateBeneficiaryRequest, requestingUserID string) (*domain.Beneficiary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	beneficiary, err := s.beneficiaryRepo.FindBeneficiaryByID(ctx, beneficiaryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		beneficiary.Name = *req.Name
	}
	if req.TaxID != nil {
		beneficiary.TaxID = *req.TaxID
	}
	if req.Whatsapp != nil {
		beneficiary.Whatsapp = *req.Whatsapp
	}
	if req.PostalCode != nil {
		beneficiary.PostalCode = *req.PostalCode
	}
	if req.Street != nil {
		beneficiary.Street = *req.Street
	}
	if req.StreetNumber != nil {
		beneficiary.StreetNumber = *req.StreetNumber
	}
	if req.District != nil {
		beneficiary.District = *req.District
	}
	if req.City != nil {
		beneficiary.City = *req.City
	}
	if req.State != nil {
		beneficiary.State = *req.State
	}
	if req.GuardianName != nil {
		beneficiary.GuardianName = *req.GuardianName
	}
	if req.GuardianWhatsapp != nil {
		beneficiary.GuardianWhatsapp = *req.GuardianWhatsapp
	}
	if req.Notes != nil {
		beneficiary.Notes = *req.Notes
	}
	beneficiary.LastUpdatedAt = time.Now().UTC()
	beneficiary.LastUpdatedBy = requestingUserID

	if err := s.beneficiaryRepo.UpdateBeneficiary(ctx, *beneficiary); err != nil {
		logger.Error("Failed to update beneficiary", slog.String("error", err.Error()), slog.String("beneficiary_id", beneficiaryID))
		return nil, fmt.Errorf("failed to update beneficiary: %w", err)
	}

	logger.Info("Beneficiary updated", slog.String("beneficiary_id", beneficiaryID))
	return beneficiary, nil
}

// DeleteBeneficiary removes a beneficiary that no obligation references.
func (s *beneficiaryService) DeleteBeneficiary(ctx context.Context, beneficiaryID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.beneficiaryRepo.DeleteBeneficiary(ctx, beneficiaryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			logger.Error("Failed to delete beneficiary", slog.String("error", err.Error()), slog.String("beneficiary_id", beneficiaryID))
		}
		return err
	}

	logger.Info("Beneficiary deleted", slog.String("beneficiary_id", beneficiaryID), slog.String("deleted_by", requestingUserID))
	return nil
}
