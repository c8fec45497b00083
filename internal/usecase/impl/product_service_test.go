package impl

import (
	"context"
	"slices"
	"testing"

	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/domain/validation"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	statsCache   *mockSvc.MockStatsCache
	publisher    *mockSvc.MockEventPublisher
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	statsCache := mockSvc.NewMockStatsCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	return productServiceFixtures{
		service: NewProductService(ProductServiceParams{
			ProductRepo:  productRepo,
			CategoryRepo: categoryRepo,
			StatsCache:   statsCache,
			Validator:    newTestValidator(),
			Publisher:    publisher,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
		publisher:    publisher,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.productRepo.EXPECT().FindByName(ctx, "Lamp").Return(nil, repository.ErrProductNotFound)
	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(true, nil)
	f.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
	f.statsCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().Publish(ctx, eventOfType(constants.EventProductCreated)).Return(nil)

	product, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{
		ProductName: "Lamp",
		CategoryID:  &categoryID,
		Price:       ptr(0.0),
	})

	require.NoError(t, err)
	assert.Equal(t, categoryID, product.CategoryID)
	assert.Equal(t, []string{}, product.Images)
	assert.Zero(t, product.PVValue)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.productRepo.EXPECT().FindByName(ctx, "Lamp").Return(nil, repository.ErrProductNotFound)
	f.categoryRepo.EXPECT().Exists(ctx, categoryID).Return(false, nil)

	_, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{
		ProductName: "Lamp",
		CategoryID:  &categoryID,
		Price:       ptr(10.0),
	})

	assert.Equal(t, domainerrors.ErrInvalidCategory, err)
}

func TestProductService_CreateProduct_ValidationFailures(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.CreateProductInput
		field string
		rule  string
	}{
		{name: "missing price", input: &usecase.CreateProductInput{CategoryID: ptr(uuid.New())}, field: "price", rule: "required"},
		{name: "negative price", input: &usecase.CreateProductInput{CategoryID: ptr(uuid.New()), Price: ptr(-1.0)}, field: "price", rule: "gte"},
		{name: "missing category", input: &usecase.CreateProductInput{Price: ptr(1.0)}, field: "categoryId", rule: "required"},
		{name: "missing name", input: &usecase.CreateProductInput{CategoryID: ptr(uuid.New()), Price: ptr(1.0)}, field: "productName", rule: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateProduct(ctx, tt.input)

			var violations validation.Violations
			require.True(t, errors.As(err, &violations))
			assert.Equal(t, tt.rule, ruleFor(violations, tt.field))
		})
	}
}

func TestProductService_CreateProduct_DuplicateName(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().FindByName(ctx, "Lamp").Return(&entity.Product{ID: uuid.New()}, nil)

	_, err := f.service.CreateProduct(ctx, &usecase.CreateProductInput{
		ProductName: "Lamp",
		CategoryID:  ptr(uuid.New()),
		Price:       ptr(10.0),
	})

	var violations validation.Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, "unique", ruleFor(violations, "productName"))
}

func TestProductService_ListProducts_Defaults(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().List(ctx, entity.ProductListQuery{
		Page:      entity.Page{Number: 1, Limit: 10},
		SortField: entity.ProductSortPrice,
	}).Return([]*entity.Product{}, nil)

	_, err := f.service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.NoError(t, err)
}

func TestProductService_ListProducts_CategorySortAndOrder(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.productRepo.EXPECT().List(ctx, entity.ProductListQuery{
		Page:       entity.Page{Number: 3, Limit: 100},
		SortField:  entity.ProductSortPVValue,
		Descending: true,
		CategoryID: &categoryID,
	}).Return([]*entity.Product{{ID: uuid.New()}}, nil)

	products, err := f.service.ListProducts(ctx, &usecase.ListProductsInput{
		Page:     3,
		Limit:    1000,
		Sort:     "pvValue",
		Order:    "desc",
		Category: &categoryID,
	})

	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_ListProducts_OrderOtherThanDescIsAscending(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.productRepo.EXPECT().List(ctx, mock.MatchedBy(func(q entity.ProductListQuery) bool {
		return !q.Descending
	})).Return([]*entity.Product{}, nil)

	_, err := f.service.ListProducts(ctx, &usecase.ListProductsInput{Order: "DESC"})

	require.NoError(t, err)
}

func TestProductService_ListProducts_UnknownSortField(t *testing.T) {
	f := createTestProductService(t)

	_, err := f.service.ListProducts(context.Background(), &usecase.ListProductsInput{Sort: "passwordHash"})

	var violations validation.Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, "oneof", ruleFor(violations, "sort"))
}

func TestProductService_UpdateProduct_ChecksCategoryOnlyWhenGiven(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	existing := &entity.Product{ID: uuid.New(), ProductName: "Lamp", CategoryID: uuid.New(), Price: 10, Images: []string{}}

	f.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.productRepo.EXPECT().FindByName(ctx, "Lamp").Return(existing, nil)
	f.productRepo.EXPECT().Update(ctx, existing).Return(nil)
	f.statsCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().Publish(ctx, eventOfType(constants.EventProductUpdated)).Return(nil)

	product, err := f.service.UpdateProduct(ctx, existing.ID, &usecase.UpdateProductInput{Price: ptr(25.5)})

	require.NoError(t, err)
	assert.InDelta(t, 25.5, product.Price, 1e-9)
}

func TestProductService_UpdateProduct_NewCategoryMustExist(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	existing := &entity.Product{ID: uuid.New(), ProductName: "Lamp", CategoryID: uuid.New(), Price: 10}
	newCategory := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.productRepo.EXPECT().FindByName(ctx, "Lamp").Return(existing, nil)
	f.categoryRepo.EXPECT().Exists(ctx, newCategory).Return(false, nil)

	_, err := f.service.UpdateProduct(ctx, existing.ID, &usecase.UpdateProductInput{CategoryID: &newCategory})

	assert.Equal(t, domainerrors.ErrInvalidCategory, err)
}

func TestProductService_UpdateProduct_NegativePriceOnMergedRecord(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	existing := &entity.Product{ID: uuid.New(), ProductName: "Lamp", CategoryID: uuid.New(), Price: 10}

	f.productRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.productRepo.EXPECT().FindByName(ctx, "Lamp").Return(existing, nil)

	_, err := f.service.UpdateProduct(ctx, existing.ID, &usecase.UpdateProductInput{Price: ptr(-5.0)})

	var violations validation.Violations
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, "gte", ruleFor(violations, "price"))
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	f.productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound)

	assert.Equal(t, domainerrors.ErrProductNotFound, f.service.DeleteProduct(ctx, id))
}

func TestProductService_SearchProducts(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	_, err := f.service.SearchProducts(ctx, "   ")
	assert.Equal(t, domainerrors.ErrSearchQueryRequired, err)

	f.productRepo.EXPECT().Search(ctx, "lamp").Return([]*entity.Product{{ProductName: "Desk Lamp"}}, nil)

	products, err := f.service.SearchProducts(ctx, " lamp ")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductService_AveragePrice_ComputesOnCacheMiss(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.statsCache.EXPECT().Get(ctx, constants.StatsAveragePrice, mock.Anything).Return(service.Generation(3), service.ErrCacheMiss)
	f.productRepo.EXPECT().AveragePrice(ctx).Return(42.5, nil)
	f.statsCache.EXPECT().Set(ctx, service.Generation(3), constants.StatsAveragePrice, 42.5).Return(nil)

	avg, err := f.service.AveragePrice(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 42.5, avg, 1e-9)
}

func TestProductService_TotalPVValue_ServesCachedValue(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.statsCache.EXPECT().
		Get(ctx, constants.StatsTotalPVValue, mock.Anything).
		Run(func(_ context.Context, _ string, dest any) {
			*(dest.(*float64)) = 7.5
		}).
		Return(service.Generation(0), nil)

	total, err := f.service.TotalPVValue(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 7.5, total, 1e-9)
}

func TestProductService_Stats_ReadFailureSkipsCacheWrite(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.statsCache.EXPECT().Get(ctx, constants.StatsTotalPVValue, mock.Anything).Return(service.Generation(0), errors.New("redis down"))
	f.productRepo.EXPECT().TotalPVValue(ctx).Return(0.0, nil)

	total, err := f.service.TotalPVValue(ctx)

	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestProductService_ProductsByPriceRange(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	products := []*entity.Product{{Price: 0}, {Price: 100}, {Price: 101}, {Price: 1000}, {Price: 1000.01}}

	f.statsCache.EXPECT().Get(ctx, constants.StatsPriceRanges, mock.Anything).Return(service.Generation(0), service.ErrCacheMiss)
	f.productRepo.EXPECT().FindAll(ctx).Return(products, nil)
	f.statsCache.EXPECT().Set(ctx, service.Generation(0), constants.StatsPriceRanges, mock.Anything).Return(nil)

	grouped, err := f.service.ProductsByPriceRange(ctx)

	require.NoError(t, err)
	assert.Len(t, grouped[entity.PriceRangeUpTo100], 2)
	assert.Len(t, grouped[entity.PriceRangeUpTo500], 1)
	assert.Len(t, grouped[entity.PriceRangeUpTo1000], 1)
	assert.Len(t, grouped[entity.PriceRangeAbove1000], 1)
}

func TestProductService_HighestPricedByCategory_RepositoryError(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()

	f.statsCache.EXPECT().Get(ctx, constants.StatsHighestPriced, mock.Anything).Return(service.Generation(0), service.ErrCacheMiss)
	f.productRepo.EXPECT().HighestPricedByCategory(ctx).Return(nil, errors.New("connection reset"))

	_, err := f.service.HighestPricedByCategory(ctx)

	assert.ErrorContains(t, err, "connection reset")
}

// memoryProducts backs the product repository mock with a map so a sequence of
// service calls observes its own writes.
type memoryProducts map[uuid.UUID]entity.Product

func (m memoryProducts) bind(repo *mockRepo.MockProductRepository) {
	load := func(p entity.Product) *entity.Product {
		p.Images = slices.Clone(p.Images)

		return &p
	}

	repo.EXPECT().FindByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Product, error) {
			p, ok := m[id]
			if !ok {
				return nil, repository.ErrProductNotFound
			}

			return load(p), nil
		}).Maybe()
	repo.EXPECT().FindByName(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, name string) (*entity.Product, error) {
			for _, p := range m {
				if p.ProductName == name {
					return load(p), nil
				}
			}

			return nil, repository.ErrProductNotFound
		}).Maybe()
	repo.EXPECT().Update(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, p *entity.Product) error {
			if _, ok := m[p.ID]; !ok {
				return repository.ErrProductNotFound
			}
			m[p.ID] = *load(*p)

			return nil
		}).Maybe()
	repo.EXPECT().Delete(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) error {
			if _, ok := m[id]; !ok {
				return repository.ErrProductNotFound
			}
			delete(m, id)

			return nil
		}).Maybe()
}

func TestProductService_UpdateThenGet_LeavesOtherFieldsUnchanged(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	original := entity.Product{
		ID:          uuid.New(),
		ProductName: "Lamp",
		Description: "desk lamp",
		Image:       "https://cdn.example.com/lamp.png",
		Images:      []string{"https://cdn.example.com/lamp-side.png"},
		CategoryID:  uuid.New(),
		Price:       30,
		PVValue:     3,
	}
	store := memoryProducts{original.ID: original}
	store.bind(f.productRepo)
	f.statsCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().Publish(ctx, eventOfType(constants.EventProductUpdated)).Return(nil)

	_, err := f.service.UpdateProduct(ctx, original.ID, &usecase.UpdateProductInput{Price: ptr(42.0)})
	require.NoError(t, err)

	got, err := f.service.GetProduct(ctx, original.ID)
	require.NoError(t, err)

	want := original
	want.Price = 42
	assert.Equal(t, &want, got)
}

func TestProductService_DeleteThenGet_NotFound(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	product := entity.Product{ID: uuid.New(), ProductName: "Chair", CategoryID: uuid.New(), Price: 80, Images: []string{}}
	store := memoryProducts{product.ID: product}
	store.bind(f.productRepo)
	f.statsCache.EXPECT().Invalidate(ctx).Return(nil)
	f.publisher.EXPECT().Publish(ctx, eventOfType(constants.EventProductDeleted)).Return(nil)

	require.NoError(t, f.service.DeleteProduct(ctx, product.ID))

	_, err := f.service.GetProduct(ctx, product.ID)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
	assert.Equal(t, domainerrors.ErrProductNotFound, f.service.DeleteProduct(ctx, product.ID))
}
