package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	statsCache   service.StatsCache
	validator    *validation.Validator
	events       eventEmitter
	catalog      *config.CatalogConfig
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	StatsCache   service.StatsCache
	Validator    *validation.Validator
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		statsCache:   params.StatsCache,
		validator:    params.Validator,
		events:       eventEmitter{publisher: params.Publisher},
		catalog:      catalogConfig(params.Config),
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateProduct checks the category reference, validates and stores the product.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ProductName: input.ProductName,
		Description: input.Description,
		Image:       input.Image,
		Images:      input.Images,
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.PVValue != nil {
		product.PVValue = *input.PVValue
	}
	product.Normalize()

	var violations validation.Violations
	if input.Price == nil {
		violations = violations.Required("price")
	}
	if err := srv.validate(ctx, product, violations); err != nil {
		return nil, err
	}

	if err := srv.ensureCategory(ctx, product.CategoryID); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.invalidateStats(ctx)
	srv.events.emit(ctx, srv.log(ctx), constants.EventProductCreated, product.ID, product)

	return product, nil
}

// ListProducts returns one page of products. Unknown sort fields are rejected.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	sortField := entity.ProductSortPrice
	if input.Sort != "" {
		sortField = entity.ProductSortField(input.Sort)
	}
	if !sortField.IsValid() {
		return nil, validation.Violations{}.Add("sort", "oneof",
			"must be one of [price productName pvValue createdAt updatedAt]")
	}

	query := entity.ProductListQuery{
		Page:       entity.NewPage(input.Page, input.Limit, srv.catalog.DefaultPageLimit, srv.catalog.MaxPageLimit),
		SortField:  sortField,
		Descending: input.Order == "desc",
		CategoryID: input.Category,
	}

	products, err := srv.productRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// UpdateProduct merges input onto the stored product. The category reference is only
// re-checked when the input carries one.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductUpdates(product, input)
	product.Normalize()

	if err := srv.validate(ctx, product, nil); err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if err := srv.ensureCategory(ctx, product.CategoryID); err != nil {
			return nil, err
		}
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.invalidateStats(ctx)
	srv.events.emit(ctx, srv.log(ctx), constants.EventProductUpdated, product.ID, product)

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.invalidateStats(ctx)
	srv.events.emit(ctx, srv.log(ctx), constants.EventProductDeleted, id, nil)

	return nil
}

func (srv *productService) SearchProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrSearchQueryRequired
	}

	products, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	return products, nil
}

func (srv *productService) AveragePrice(ctx context.Context) (float64, error) {
	return cachedStat(ctx, srv, constants.StatsAveragePrice, srv.productRepo.AveragePrice)
}

func (srv *productService) TotalPVValue(ctx context.Context) (float64, error) {
	return cachedStat(ctx, srv, constants.StatsTotalPVValue, srv.productRepo.TotalPVValue)
}

func (srv *productService) HighestPricedByCategory(ctx context.Context) ([]*entity.CategoryTopProduct, error) {
	return cachedStat(ctx, srv, constants.StatsHighestPriced, srv.productRepo.HighestPricedByCategory)
}

// ProductsByPriceRange groups every product into the fixed price buckets.
func (srv *productService) ProductsByPriceRange(ctx context.Context) (map[entity.PriceRange][]*entity.Product, error) {
	return cachedStat(ctx, srv, constants.StatsPriceRanges, func(ctx context.Context) (map[entity.PriceRange][]*entity.Product, error) {
		products, err := srv.productRepo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		return entity.GroupByPriceRange(products), nil
	})
}

// cachedStat serves field from the stats cache, computing it on a miss and storing it
// against the generation the miss was observed at. Cache read failures are logged and
// fall through to the repository without storing.
func cachedStat[T any](ctx context.Context, srv *productService, field string, compute func(context.Context) (T, error)) (T, error) {
	var value T
	gen, err := srv.statsCache.Get(ctx, field, &value)
	if err == nil {
		return value, nil
	}
	cacheable := errors.Is(err, service.ErrCacheMiss)
	if !cacheable {
		srv.log(ctx).Warn("Stats cache read failed", slog.String("field", field), slog.Any("error", err))
	}

	value, err = compute(ctx)
	if err != nil {
		var zero T

		return zero, errors.Wrapf(err, "failed to compute %s", field)
	}

	if cacheable {
		if err := srv.statsCache.Set(ctx, gen, field, value); err != nil {
			srv.log(ctx).Warn("Stats cache write failed", slog.String("field", field), slog.Any("error", err))
		}
	}

	return value, nil
}

func (srv *productService) invalidateStats(ctx context.Context) {
	if err := srv.statsCache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Stats cache invalidation failed", slog.Any("error", err))
	}
}

// ensureCategory rejects references to categories that do not exist at this moment.
func (srv *productService) ensureCategory(ctx context.Context, categoryID uuid.UUID) error {
	exists, err := srv.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return errors.Wrap(err, "failed to check category")
	}
	if !exists {
		return domainerrors.ErrInvalidCategory
	}

	return nil
}

// validate runs field rules and the name uniqueness check, excluding the product itself.
func (srv *productService) validate(ctx context.Context, product *entity.Product, violations validation.Violations) error {
	violations = append(violations, srv.validator.Struct(product)...)

	if product.ProductName != "" {
		existing, err := srv.productRepo.FindByName(ctx, product.ProductName)
		switch {
		case err == nil && existing.ID != product.ID:
			violations = violations.Add("productName", "unique", "is already in use")
		case err != nil && !errors.Is(err, repository.ErrProductNotFound):
			return errors.Wrap(err, "failed to check product name uniqueness")
		}
	}

	return violations.Err()
}

func applyProductUpdates(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.ProductName != nil {
		product.ProductName = *input.ProductName
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.PVValue != nil {
		product.PVValue = *input.PVValue
	}
}
