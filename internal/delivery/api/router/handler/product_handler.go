package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler holds dependencies for product catalog and statistics handlers
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or updating a product.
// Omitted fields are left unchanged on update.
type ProductRequest struct {
	ProductName *string  `json:"productName"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Images      []string `json:"images"`
	CategoryID  *string  `json:"categoryId"`
	Price       *float64 `json:"price"`
	PVValue     *float64 `json:"pvValue"`
}

// ListProductsRequest holds the query string of a product listing
type ListProductsRequest struct {
	Page     int    `json:"page" query:"page"`
	Limit    int    `json:"limit" query:"limit"`
	Sort     string `json:"sort" query:"sort"`
	Order    string `json:"order" query:"order"`
	Category string `json:"category" query:"category"`
}

// categoryID parses the referenced category. An unparseable id cannot name an existing category.
func (r *ProductRequest) categoryID() (*uuid.UUID, error) {
	if r.CategoryID == nil {
		return nil, nil
	}

	id, err := uuid.Parse(*r.CategoryID)
	if err != nil {
		return nil, domainerrors.ErrInvalidCategory
	}

	return &id, nil
}

// CreateProduct handles product creation
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	categoryID, err := req.categoryID()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.CreateProductInput{
		Images:     req.Images,
		CategoryID: categoryID,
		Price:      req.Price,
		PVValue:    req.PVValue,
	}
	if req.ProductName != nil {
		input.ProductName = *req.ProductName
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Image != nil {
		input.Image = *req.Image
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.WithEntity(c, http.StatusCreated, "Product created successfully", "product", product)
}

// ListProducts handles paged, sorted and filtered product listings
func (h *ProductHandler) ListProducts(c echo.Context) error {
	var req ListProductsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	input := &usecase.ListProductsInput{
		Page:  req.Page,
		Limit: req.Limit,
		Sort:  req.Sort,
		Order: req.Order,
	}
	if req.Category != "" {
		categoryID, err := parseUUID("category", &req.Category)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		input.Category = categoryID
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// GetProduct handles retrieving a single product
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, product)
}

// UpdateProduct handles a partial product update
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c)
	}

	categoryID, err := req.categoryID()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, &usecase.UpdateProductInput{
		ProductName: req.ProductName,
		Description: req.Description,
		Image:       req.Image,
		Images:      req.Images,
		CategoryID:  categoryID,
		Price:       req.Price,
		PVValue:     req.PVValue,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.WithEntity(c, http.StatusOK, "Product updated successfully", "product", product)
}

// DeleteProduct handles product removal
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, "Product deleted successfully")
}

// SearchProducts handles substring search over product names and descriptions
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	products, err := h.productUC.SearchProducts(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products)
}

// AveragePrice handles the mean price statistic
func (h *ProductHandler) AveragePrice(c echo.Context) error {
	average, err := h.productUC.AveragePrice(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"averagePrice": average})
}

// TotalPVValue handles the PV value sum statistic
func (h *ProductHandler) TotalPVValue(c echo.Context) error {
	total, err := h.productUC.TotalPVValue(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]float64{"totalPVValue": total})
}

// HighestPricedByCategory handles the per-category top product statistic
func (h *ProductHandler) HighestPricedByCategory(c echo.Context) error {
	tops, err := h.productUC.HighestPricedByCategory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tops)
}

// ProductsByPriceRange handles the price bucket statistic
func (h *ProductHandler) ProductsByPriceRange(c echo.Context) error {
	grouped, err := h.productUC.ProductsByPriceRange(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, grouped)
}
