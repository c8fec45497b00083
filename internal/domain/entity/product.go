package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product is a catalog item referencing exactly one category.
// The reference is checked on write only, so it may dangle after the category is deleted.
type Product struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"productName" validate:"required"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	CategoryID  uuid.UUID `json:"categoryId" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	PVValue     float64   `json:"pvValue"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize trims the product name in place and replaces a nil image list with an empty one.
func (p *Product) Normalize() {
	p.ProductName = strings.TrimSpace(p.ProductName)
	if p.Images == nil {
		p.Images = []string{}
	}
}

// CategoryTopProduct pairs a category with its highest priced product.
type CategoryTopProduct struct {
	CategoryID           uuid.UUID `json:"categoryId"`
	HighestPricedProduct *Product  `json:"highestPricedProduct"`
}

// ProductSortField is a whitelisted column for product listings.
type ProductSortField string

const (
	ProductSortPrice       ProductSortField = "price"
	ProductSortProductName ProductSortField = "productName"
	ProductSortPVValue     ProductSortField = "pvValue"
	ProductSortCreatedAt   ProductSortField = "createdAt"
	ProductSortUpdatedAt   ProductSortField = "updatedAt"
)

// IsValid reports whether the field may be used for sorting.
func (f ProductSortField) IsValid() bool {
	switch f {
	case ProductSortPrice, ProductSortProductName, ProductSortPVValue, ProductSortCreatedAt, ProductSortUpdatedAt:
		return true
	default:
		return false
	}
}

// ProductListQuery selects one page of products.
type ProductListQuery struct {
	Page       Page
	SortField  ProductSortField
	Descending bool
	CategoryID *uuid.UUID
}
