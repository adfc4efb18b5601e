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

// categoryService manages the picker lookup lists. Categories are deactivated
// rather than deleted so historical records keep their labels.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

// Ensure categoryService implements the portssvc.CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory persists a new category.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Kind:        req.Kind,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save category", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID), slog.String("kind", string(category.Kind)))
	return &category, nil
}

// GetCategoryByID retrieves a specific category by its ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find category by ID", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

// ListCategories retrieves categories of a kind.
func (s *categoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams) (*dto.ListCategoriesResponse, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, params.Kind, params.ActiveOnly)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list categories", slog.String("error", err.Error()), slog.String("kind", string(params.Kind)))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	resp := dto.ToListCategoriesResponse(categories)
	return &resp, nil
}

// UpdateCategory applies a partial update to a category.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = time.Now().UTC()
	category.LastUpdatedBy = requestingUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to update category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return nil, err
	}

	logger.Info("Category updated", slog.String("category_id", categoryID))
	return category, nil
}

// DeactivateCategory hides a category from pickers without breaking history.
func (s *categoryService) DeactivateCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.categoryRepo.DeactivateCategory(ctx, categoryID, requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to deactivate category", slog.String("error", err.Error()), slog.String("category_id", categoryID))
		}
		return err
	}

	logger.Info("Category deactivated", slog.String("category_id", categoryID), slog.String("deactivated_by", requestingUserID))
	return nil
}
