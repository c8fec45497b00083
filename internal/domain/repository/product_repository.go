package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines persistence and aggregation operations for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// List returns one page of products filtered and sorted per query.
	List(ctx context.Context, query entity.ProductListQuery) ([]*entity.Product, error)

	// FindAll returns every product ordered by price.
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// Search returns products whose name or description contains term, ignoring case.
	// term is matched literally.
	Search(ctx context.Context, term string) ([]*entity.Product, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AveragePrice returns the mean price, or 0 when there are no products.
	AveragePrice(ctx context.Context) (float64, error)

	// TotalPVValue returns the sum of pvValue, or 0 when there are no products.
	TotalPVValue(ctx context.Context) (float64, error)

	// HighestPricedByCategory returns one maximal-price product per distinct category ID.
	HighestPricedByCategory(ctx context.Context) ([]*entity.CategoryTopProduct, error)
}
