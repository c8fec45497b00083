package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductUsecase is a mock type for the ProductUsecase type
type MockProductUsecase struct {
	mock.Mock
}

type MockProductUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductUsecase) EXPECT() *MockProductUsecase_Expecter {
	return &MockProductUsecase_Expecter{mock: &_m.Mock}
}

// CreateProduct provides a mock function with given fields: ctx, input
func (_m *MockProductUsecase) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateProduct")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateProductInput) (*entity.Product, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateProductInput) *entity.Product); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.CreateProductInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_CreateProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateProduct'
type MockProductUsecase_CreateProduct_Call struct {
	*mock.Call
}

// CreateProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.CreateProductInput
func (_e *MockProductUsecase_Expecter) CreateProduct(ctx interface{}, input interface{}) *MockProductUsecase_CreateProduct_Call {
	return &MockProductUsecase_CreateProduct_Call{Call: _e.mock.On("CreateProduct", ctx, input)}
}

func (_c *MockProductUsecase_CreateProduct_Call) Run(run func(ctx context.Context, input *usecase.CreateProductInput)) *MockProductUsecase_CreateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.CreateProductInput))
	})
	return _c
}

func (_c *MockProductUsecase_CreateProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockProductUsecase_CreateProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_CreateProduct_Call) RunAndReturn(run func(context.Context, *usecase.CreateProductInput) (*entity.Product, error)) *MockProductUsecase_CreateProduct_Call {
	_c.Call.Return(run)
	return _c
}

// ListProducts provides a mock function with given fields: ctx, input
func (_m *MockProductUsecase) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for ListProducts")
	}

	var r0 []*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ListProductsInput) ([]*entity.Product, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.ListProductsInput) []*entity.Product); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.ListProductsInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_ListProducts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListProducts'
type MockProductUsecase_ListProducts_Call struct {
	*mock.Call
}

// ListProducts is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.ListProductsInput
func (_e *MockProductUsecase_Expecter) ListProducts(ctx interface{}, input interface{}) *MockProductUsecase_ListProducts_Call {
	return &MockProductUsecase_ListProducts_Call{Call: _e.mock.On("ListProducts", ctx, input)}
}

func (_c *MockProductUsecase_ListProducts_Call) Run(run func(ctx context.Context, input *usecase.ListProductsInput)) *MockProductUsecase_ListProducts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.ListProductsInput))
	})
	return _c
}

func (_c *MockProductUsecase_ListProducts_Call) Return(_a0 []*entity.Product, _a1 error) *MockProductUsecase_ListProducts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_ListProducts_Call) RunAndReturn(run func(context.Context, *usecase.ListProductsInput) ([]*entity.Product, error)) *MockProductUsecase_ListProducts_Call {
	_c.Call.Return(run)
	return _c
}

// GetProduct provides a mock function with given fields: ctx, id
func (_m *MockProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetProduct")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Product, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Product); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_GetProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetProduct'
type MockProductUsecase_GetProduct_Call struct {
	*mock.Call
}

// GetProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockProductUsecase_Expecter) GetProduct(ctx interface{}, id interface{}) *MockProductUsecase_GetProduct_Call {
	return &MockProductUsecase_GetProduct_Call{Call: _e.mock.On("GetProduct", ctx, id)}
}

func (_c *MockProductUsecase_GetProduct_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockProductUsecase_GetProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductUsecase_GetProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockProductUsecase_GetProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_GetProduct_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Product, error)) *MockProductUsecase_GetProduct_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateProduct provides a mock function with given fields: ctx, id, input
func (_m *MockProductUsecase) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateProduct")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateProductInput) (*entity.Product, error)); ok {
		return rf(ctx, id, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateProductInput) *entity.Product); ok {
		r0 = rf(ctx, id, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.UpdateProductInput) error); ok {
		r1 = rf(ctx, id, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_UpdateProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateProduct'
type MockProductUsecase_UpdateProduct_Call struct {
	*mock.Call
}

// UpdateProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - input *usecase.UpdateProductInput
func (_e *MockProductUsecase_Expecter) UpdateProduct(ctx interface{}, id interface{}, input interface{}) *MockProductUsecase_UpdateProduct_Call {
	return &MockProductUsecase_UpdateProduct_Call{Call: _e.mock.On("UpdateProduct", ctx, id, input)}
}

func (_c *MockProductUsecase_UpdateProduct_Call) Run(run func(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput)) *MockProductUsecase_UpdateProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.UpdateProductInput))
	})
	return _c
}

func (_c *MockProductUsecase_UpdateProduct_Call) Return(_a0 *entity.Product, _a1 error) *MockProductUsecase_UpdateProduct_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_UpdateProduct_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.UpdateProductInput) (*entity.Product, error)) *MockProductUsecase_UpdateProduct_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteProduct provides a mock function with given fields: ctx, id
func (_m *MockProductUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteProduct")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductUsecase_DeleteProduct_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteProduct'
type MockProductUsecase_DeleteProduct_Call struct {
	*mock.Call
}

// DeleteProduct is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockProductUsecase_Expecter) DeleteProduct(ctx interface{}, id interface{}) *MockProductUsecase_DeleteProduct_Call {
	return &MockProductUsecase_DeleteProduct_Call{Call: _e.mock.On("DeleteProduct", ctx, id)}
}

func (_c *MockProductUsecase_DeleteProduct_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockProductUsecase_DeleteProduct_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductUsecase_DeleteProduct_Call) Return(_a0 error) *MockProductUsecase_DeleteProduct_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductUsecase_DeleteProduct_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockProductUsecase_DeleteProduct_Call {
	_c.Call.Return(run)
	return _c
}

// SearchProducts provides a mock function with given fields: ctx, query
func (_m *MockProductUsecase) SearchProducts(ctx context.Context, query string) ([]*entity.Product, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for SearchProducts")
	}

	var r0 []*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]*entity.Product, error)); ok {
		return rf(ctx, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []*entity.Product); ok {
		r0 = rf(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_SearchProducts_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SearchProducts'
type MockProductUsecase_SearchProducts_Call struct {
	*mock.Call
}

// SearchProducts is a helper method to define mock.On call
//   - ctx context.Context
//   - query string
func (_e *MockProductUsecase_Expecter) SearchProducts(ctx interface{}, query interface{}) *MockProductUsecase_SearchProducts_Call {
	return &MockProductUsecase_SearchProducts_Call{Call: _e.mock.On("SearchProducts", ctx, query)}
}

func (_c *MockProductUsecase_SearchProducts_Call) Run(run func(ctx context.Context, query string)) *MockProductUsecase_SearchProducts_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockProductUsecase_SearchProducts_Call) Return(_a0 []*entity.Product, _a1 error) *MockProductUsecase_SearchProducts_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_SearchProducts_Call) RunAndReturn(run func(context.Context, string) ([]*entity.Product, error)) *MockProductUsecase_SearchProducts_Call {
	_c.Call.Return(run)
	return _c
}

// AveragePrice provides a mock function with given fields: ctx
func (_m *MockProductUsecase) AveragePrice(ctx context.Context) (float64, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for AveragePrice")
	}

	var r0 float64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (float64, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) float64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(float64)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_AveragePrice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AveragePrice'
type MockProductUsecase_AveragePrice_Call struct {
	*mock.Call
}

// AveragePrice is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductUsecase_Expecter) AveragePrice(ctx interface{}) *MockProductUsecase_AveragePrice_Call {
	return &MockProductUsecase_AveragePrice_Call{Call: _e.mock.On("AveragePrice", ctx)}
}

func (_c *MockProductUsecase_AveragePrice_Call) Run(run func(ctx context.Context)) *MockProductUsecase_AveragePrice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductUsecase_AveragePrice_Call) Return(_a0 float64, _a1 error) *MockProductUsecase_AveragePrice_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_AveragePrice_Call) RunAndReturn(run func(context.Context) (float64, error)) *MockProductUsecase_AveragePrice_Call {
	_c.Call.Return(run)
	return _c
}

// TotalPVValue provides a mock function with given fields: ctx
func (_m *MockProductUsecase) TotalPVValue(ctx context.Context) (float64, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for TotalPVValue")
	}

	var r0 float64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (float64, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) float64); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(float64)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_TotalPVValue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TotalPVValue'
type MockProductUsecase_TotalPVValue_Call struct {
	*mock.Call
}

// TotalPVValue is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductUsecase_Expecter) TotalPVValue(ctx interface{}) *MockProductUsecase_TotalPVValue_Call {
	return &MockProductUsecase_TotalPVValue_Call{Call: _e.mock.On("TotalPVValue", ctx)}
}

func (_c *MockProductUsecase_TotalPVValue_Call) Run(run func(ctx context.Context)) *MockProductUsecase_TotalPVValue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductUsecase_TotalPVValue_Call) Return(_a0 float64, _a1 error) *MockProductUsecase_TotalPVValue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_TotalPVValue_Call) RunAndReturn(run func(context.Context) (float64, error)) *MockProductUsecase_TotalPVValue_Call {
	_c.Call.Return(run)
	return _c
}

// HighestPricedByCategory provides a mock function with given fields: ctx
func (_m *MockProductUsecase) HighestPricedByCategory(ctx context.Context) ([]*entity.CategoryTopProduct, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for HighestPricedByCategory")
	}

	var r0 []*entity.CategoryTopProduct
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.CategoryTopProduct, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.CategoryTopProduct); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.CategoryTopProduct)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_HighestPricedByCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HighestPricedByCategory'
type MockProductUsecase_HighestPricedByCategory_Call struct {
	*mock.Call
}

// HighestPricedByCategory is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductUsecase_Expecter) HighestPricedByCategory(ctx interface{}) *MockProductUsecase_HighestPricedByCategory_Call {
	return &MockProductUsecase_HighestPricedByCategory_Call{Call: _e.mock.On("HighestPricedByCategory", ctx)}
}

func (_c *MockProductUsecase_HighestPricedByCategory_Call) Run(run func(ctx context.Context)) *MockProductUsecase_HighestPricedByCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductUsecase_HighestPricedByCategory_Call) Return(_a0 []*entity.CategoryTopProduct, _a1 error) *MockProductUsecase_HighestPricedByCategory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_HighestPricedByCategory_Call) RunAndReturn(run func(context.Context) ([]*entity.CategoryTopProduct, error)) *MockProductUsecase_HighestPricedByCategory_Call {
	_c.Call.Return(run)
	return _c
}

// ProductsByPriceRange provides a mock function with given fields: ctx
func (_m *MockProductUsecase) ProductsByPriceRange(ctx context.Context) (map[entity.PriceRange][]*entity.Product, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ProductsByPriceRange")
	}

	var r0 map[entity.PriceRange][]*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (map[entity.PriceRange][]*entity.Product, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) map[entity.PriceRange][]*entity.Product); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[entity.PriceRange][]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductUsecase_ProductsByPriceRange_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ProductsByPriceRange'
type MockProductUsecase_ProductsByPriceRange_Call struct {
	*mock.Call
}

// ProductsByPriceRange is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductUsecase_Expecter) ProductsByPriceRange(ctx interface{}) *MockProductUsecase_ProductsByPriceRange_Call {
	return &MockProductUsecase_ProductsByPriceRange_Call{Call: _e.mock.On("ProductsByPriceRange", ctx)}
}

func (_c *MockProductUsecase_ProductsByPriceRange_Call) Run(run func(ctx context.Context)) *MockProductUsecase_ProductsByPriceRange_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductUsecase_ProductsByPriceRange_Call) Return(_a0 map[entity.PriceRange][]*entity.Product, _a1 error) *MockProductUsecase_ProductsByPriceRange_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductUsecase_ProductsByPriceRange_Call) RunAndReturn(run func(context.Context) (map[entity.PriceRange][]*entity.Product, error)) *MockProductUsecase_ProductsByPriceRange_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProductUsecase creates a new instance of MockProductUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProductUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductUsecase {
	mock := &MockProductUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
