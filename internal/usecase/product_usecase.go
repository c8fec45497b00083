package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput represents the input for creating a product.
type CreateProductInput struct {
	ProductName string
	Description string
	Image       string
	Images      []string
	CategoryID  *uuid.UUID
	Price       *float64
	PVValue     *float64
}

// UpdateProductInput holds the fields to change. Nil fields are left as stored.
type UpdateProductInput struct {
	ProductName *string
	Description *string
	Image       *string
	Images      []string
	CategoryID  *uuid.UUID
	Price       *float64
	PVValue     *float64
}

// ListProductsInput carries the raw listing parameters.
// Zero values fall back to page 1, the configured default limit and ascending price.
type ListProductsInput struct {
	Page     int
	Limit    int
	Sort     string
	Order    string
	Category *uuid.UUID
}

// ProductUsecase defines the interface for the product catalog and its statistics.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// SearchProducts matches query as a literal substring of name or description.
	SearchProducts(ctx context.Context, query string) ([]*entity.Product, error)

	AveragePrice(ctx context.Context) (float64, error)
	TotalPVValue(ctx context.Context) (float64, error)
	HighestPricedByCategory(ctx context.Context) ([]*entity.CategoryTopProduct, error)
	ProductsByPriceRange(ctx context.Context) (map[entity.PriceRange][]*entity.Product, error)
}
