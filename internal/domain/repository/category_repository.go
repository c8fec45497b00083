package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// Exists reports whether a category with the given ID is stored.
	// Callers use it as a point-in-time check; a concurrent delete can still follow.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category. Products that reference it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
