package services

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
	"github.com/finassoc/association_finance_app/internal/dto"
)

// CategorySvcFacade defines operations for picker categories.
type CategorySvcFacade interface {
	// GetCategoryByID retrieves a specific category by its ID.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories of a kind.
	ListCategories(ctx context.Context, params dto.ListCategoriesParams) (*dto.ListCategoriesResponse, error)

	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)

	// UpdateCategory applies a partial update to a category.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, requestingUserID string) (*domain.Category, error)

	// DeactivateCategory hides a category from pickers without breaking history.
	DeactivateCategory(ctx context.Context, categoryID string, requestingUserID string) error
}
