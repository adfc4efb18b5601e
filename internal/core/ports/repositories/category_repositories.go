package repositories

import (
	"context"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// CategoryReader defines read operations for category data
type CategoryReader interface {
	// FindCategoryByID retrieves a specific category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories of the given kind ordered by name.
	// When activeOnly is true, deactivated categories are excluded.
	ListCategories(ctx context.Context, kind domain.CategoryKind, activeOnly bool) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeactivateCategory marks a category as inactive so it no longer appears in pickers.
	DeactivateCategory(ctx context.Context, categoryID string, userID string) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
