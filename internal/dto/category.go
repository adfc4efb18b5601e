package dto

import (
	"time"

	"github.com/finassoc/association_finance_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Kind        domain.CategoryKind `json:"kind" binding:"required,oneof=HELP PAYABLE RECEIVABLE PAYMENT_METHOD RECEIVABLE_ORIGIN"`
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Kind       domain.CategoryKind `form:"kind" binding:"required,oneof=HELP PAYABLE RECEIVABLE PAYMENT_METHOD RECEIVABLE_ORIGIN"`
	ActiveOnly bool                `form:"activeOnly,default=true"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID    string              `json:"categoryID"`
	Kind          domain.CategoryKind `json:"kind"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:    c.CategoryID,
		Kind:          c.Kind,
		Name:          c.Name,
		Description:   c.Description,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListCategoriesResponse converts a slice of domain.Category to ListCategoriesResponse
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		res[i] = ToCategoryResponse(&c)
	}
	return ListCategoriesResponse{Categories: res}
}
