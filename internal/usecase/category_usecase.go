package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput represents the input for creating a category.
type CreateCategoryInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// UpdateCategoryInput holds the fields to change. Nil fields are left as stored.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// CategoryUsecase defines the interface for the category catalog.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)

	// DeleteCategory removes the category. Products referencing it are kept.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
