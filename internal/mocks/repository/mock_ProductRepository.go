package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock type for the ProductRepository type
type MockProductRepository struct {
	mock.Mock
}

type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
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

// MockProductRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockProductRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockProductRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockProductRepository_FindByID_Call {
	return &MockProductRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockProductRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockProductRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductRepository_FindByID_Call) Return(_a0 *entity.Product, _a1 error) *MockProductRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Product, error)) *MockProductRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByName provides a mock function with given fields: ctx, name
func (_m *MockProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	ret := _m.Called(ctx, name)

	if len(ret) == 0 {
		panic("no return value specified for FindByName")
	}

	var r0 *entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Product, error)); ok {
		return rf(ctx, name)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Product); ok {
		r0 = rf(ctx, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_FindByName_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByName'
type MockProductRepository_FindByName_Call struct {
	*mock.Call
}

// FindByName is a helper method to define mock.On call
//   - ctx context.Context
//   - name string
func (_e *MockProductRepository_Expecter) FindByName(ctx interface{}, name interface{}) *MockProductRepository_FindByName_Call {
	return &MockProductRepository_FindByName_Call{Call: _e.mock.On("FindByName", ctx, name)}
}

func (_c *MockProductRepository_FindByName_Call) Run(run func(ctx context.Context, name string)) *MockProductRepository_FindByName_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockProductRepository_FindByName_Call) Return(_a0 *entity.Product, _a1 error) *MockProductRepository_FindByName_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_FindByName_Call) RunAndReturn(run func(context.Context, string) (*entity.Product, error)) *MockProductRepository_FindByName_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, query
func (_m *MockProductRepository) List(ctx context.Context, query entity.ProductListQuery) ([]*entity.Product, error) {
	ret := _m.Called(ctx, query)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductListQuery) ([]*entity.Product, error)); ok {
		return rf(ctx, query)
	}
	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductListQuery) []*entity.Product); ok {
		r0 = rf(ctx, query)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, entity.ProductListQuery) error); ok {
		r1 = rf(ctx, query)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockProductRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - query entity.ProductListQuery
func (_e *MockProductRepository_Expecter) List(ctx interface{}, query interface{}) *MockProductRepository_List_Call {
	return &MockProductRepository_List_Call{Call: _e.mock.On("List", ctx, query)}
}

func (_c *MockProductRepository_List_Call) Run(run func(ctx context.Context, query entity.ProductListQuery)) *MockProductRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(entity.ProductListQuery))
	})
	return _c
}

func (_c *MockProductRepository_List_Call) Return(_a0 []*entity.Product, _a1 error) *MockProductRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_List_Call) RunAndReturn(run func(context.Context, entity.ProductListQuery) ([]*entity.Product, error)) *MockProductRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// FindAll provides a mock function with given fields: ctx
func (_m *MockProductRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Product, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Product); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockProductRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductRepository_Expecter) FindAll(ctx interface{}) *MockProductRepository_FindAll_Call {
	return &MockProductRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockProductRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockProductRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductRepository_FindAll_Call) Return(_a0 []*entity.Product, _a1 error) *MockProductRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Product, error)) *MockProductRepository_FindAll_Call {
	_c.Call.Return(run)
	return _c
}

// Search provides a mock function with given fields: ctx, term
func (_m *MockProductRepository) Search(ctx context.Context, term string) ([]*entity.Product, error) {
	ret := _m.Called(ctx, term)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 []*entity.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]*entity.Product, error)); ok {
		return rf(ctx, term)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []*entity.Product); ok {
		r0 = rf(ctx, term)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, term)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockProductRepository_Search_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Search'
type MockProductRepository_Search_Call struct {
	*mock.Call
}

// Search is a helper method to define mock.On call
//   - ctx context.Context
//   - term string
func (_e *MockProductRepository_Expecter) Search(ctx interface{}, term interface{}) *MockProductRepository_Search_Call {
	return &MockProductRepository_Search_Call{Call: _e.mock.On("Search", ctx, term)}
}

func (_c *MockProductRepository_Search_Call) Run(run func(ctx context.Context, term string)) *MockProductRepository_Search_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockProductRepository_Search_Call) Return(_a0 []*entity.Product, _a1 error) *MockProductRepository_Search_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_Search_Call) RunAndReturn(run func(context.Context, string) ([]*entity.Product, error)) *MockProductRepository_Search_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Product) error); ok {
		r0 = rf(ctx, product)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockProductRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - product *entity.Product
func (_e *MockProductRepository_Expecter) Create(ctx interface{}, product interface{}) *MockProductRepository_Create_Call {
	return &MockProductRepository_Create_Call{Call: _e.mock.On("Create", ctx, product)}
}

func (_c *MockProductRepository_Create_Call) Run(run func(ctx context.Context, product *entity.Product)) *MockProductRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Product))
	})
	return _c
}

func (_c *MockProductRepository_Create_Call) Return(_a0 error) *MockProductRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Product) error) *MockProductRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Product) error); ok {
		r0 = rf(ctx, product)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockProductRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - product *entity.Product
func (_e *MockProductRepository_Expecter) Update(ctx interface{}, product interface{}) *MockProductRepository_Update_Call {
	return &MockProductRepository_Update_Call{Call: _e.mock.On("Update", ctx, product)}
}

func (_c *MockProductRepository_Update_Call) Run(run func(ctx context.Context, product *entity.Product)) *MockProductRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Product))
	})
	return _c
}

func (_c *MockProductRepository_Update_Call) Return(_a0 error) *MockProductRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Product) error) *MockProductRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockProductRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockProductRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockProductRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockProductRepository_Delete_Call {
	return &MockProductRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockProductRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockProductRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockProductRepository_Delete_Call) Return(_a0 error) *MockProductRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockProductRepository_Delete_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockProductRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// AveragePrice provides a mock function with given fields: ctx
func (_m *MockProductRepository) AveragePrice(ctx context.Context) (float64, error) {
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

// MockProductRepository_AveragePrice_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AveragePrice'
type MockProductRepository_AveragePrice_Call struct {
	*mock.Call
}

// AveragePrice is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductRepository_Expecter) AveragePrice(ctx interface{}) *MockProductRepository_AveragePrice_Call {
	return &MockProductRepository_AveragePrice_Call{Call: _e.mock.On("AveragePrice", ctx)}
}

func (_c *MockProductRepository_AveragePrice_Call) Run(run func(ctx context.Context)) *MockProductRepository_AveragePrice_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductRepository_AveragePrice_Call) Return(_a0 float64, _a1 error) *MockProductRepository_AveragePrice_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_AveragePrice_Call) RunAndReturn(run func(context.Context) (float64, error)) *MockProductRepository_AveragePrice_Call {
	_c.Call.Return(run)
	return _c
}

// TotalPVValue provides a mock function with given fields: ctx
func (_m *MockProductRepository) TotalPVValue(ctx context.Context) (float64, error) {
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

// MockProductRepository_TotalPVValue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TotalPVValue'
type MockProductRepository_TotalPVValue_Call struct {
	*mock.Call
}

// TotalPVValue is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductRepository_Expecter) TotalPVValue(ctx interface{}) *MockProductRepository_TotalPVValue_Call {
	return &MockProductRepository_TotalPVValue_Call{Call: _e.mock.On("TotalPVValue", ctx)}
}

func (_c *MockProductRepository_TotalPVValue_Call) Run(run func(ctx context.Context)) *MockProductRepository_TotalPVValue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductRepository_TotalPVValue_Call) Return(_a0 float64, _a1 error) *MockProductRepository_TotalPVValue_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_TotalPVValue_Call) RunAndReturn(run func(context.Context) (float64, error)) *MockProductRepository_TotalPVValue_Call {
	_c.Call.Return(run)
	return _c
}

// HighestPricedByCategory provides a mock function with given fields: ctx
func (_m *MockProductRepository) HighestPricedByCategory(ctx context.Context) ([]*entity.CategoryTopProduct, error) {
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

// MockProductRepository_HighestPricedByCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'HighestPricedByCategory'
type MockProductRepository_HighestPricedByCategory_Call struct {
	*mock.Call
}

// HighestPricedByCategory is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockProductRepository_Expecter) HighestPricedByCategory(ctx interface{}) *MockProductRepository_HighestPricedByCategory_Call {
	return &MockProductRepository_HighestPricedByCategory_Call{Call: _e.mock.On("HighestPricedByCategory", ctx)}
}

func (_c *MockProductRepository_HighestPricedByCategory_Call) Run(run func(ctx context.Context)) *MockProductRepository_HighestPricedByCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockProductRepository_HighestPricedByCategory_Call) Return(_a0 []*entity.CategoryTopProduct, _a1 error) *MockProductRepository_HighestPricedByCategory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockProductRepository_HighestPricedByCategory_Call) RunAndReturn(run func(context.Context) ([]*entity.CategoryTopProduct, error)) *MockProductRepository_HighestPricedByCategory_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockProductRepository creates a new instance of MockProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	mock := &MockProductRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
