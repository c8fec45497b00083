package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockCategoryUsecase is a mock type for the CategoryUsecase type
type MockCategoryUsecase struct {
	mock.Mock
}

type MockCategoryUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCategoryUsecase) EXPECT() *MockCategoryUsecase_Expecter {
	return &MockCategoryUsecase_Expecter{mock: &_m.Mock}
}

// CreateCategory provides a mock function with given fields: ctx, input
func (_m *MockCategoryUsecase) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateCategory")
	}

	var r0 *entity.Category
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateCategoryInput) (*entity.Category, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateCategoryInput) *entity.Category); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Category)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.CreateCategoryInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCategoryUsecase_CreateCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateCategory'
type MockCategoryUsecase_CreateCategory_Call struct {
	*mock.Call
}

// CreateCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.CreateCategoryInput
func (_e *MockCategoryUsecase_Expecter) CreateCategory(ctx interface{}, input interface{}) *MockCategoryUsecase_CreateCategory_Call {
	return &MockCategoryUsecase_CreateCategory_Call{Call: _e.mock.On("CreateCategory", ctx, input)}
}

func (_c *MockCategoryUsecase_CreateCategory_Call) Run(run func(ctx context.Context, input *usecase.CreateCategoryInput)) *MockCategoryUsecase_CreateCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.CreateCategoryInput))
	})
	return _c
}

func (_c *MockCategoryUsecase_CreateCategory_Call) Return(_a0 *entity.Category, _a1 error) *MockCategoryUsecase_CreateCategory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCategoryUsecase_CreateCategory_Call) RunAndReturn(run func(context.Context, *usecase.CreateCategoryInput) (*entity.Category, error)) *MockCategoryUsecase_CreateCategory_Call {
	_c.Call.Return(run)
	return _c
}

// ListCategories provides a mock function with given fields: ctx
func (_m *MockCategoryUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCategories")
	}

	var r0 []*entity.Category
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Category, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Category); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Category)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCategoryUsecase_ListCategories_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCategories'
type MockCategoryUsecase_ListCategories_Call struct {
	*mock.Call
}

// ListCategories is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockCategoryUsecase_Expecter) ListCategories(ctx interface{}) *MockCategoryUsecase_ListCategories_Call {
	return &MockCategoryUsecase_ListCategories_Call{Call: _e.mock.On("ListCategories", ctx)}
}

func (_c *MockCategoryUsecase_ListCategories_Call) Run(run func(ctx context.Context)) *MockCategoryUsecase_ListCategories_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockCategoryUsecase_ListCategories_Call) Return(_a0 []*entity.Category, _a1 error) *MockCategoryUsecase_ListCategories_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCategoryUsecase_ListCategories_Call) RunAndReturn(run func(context.Context) ([]*entity.Category, error)) *MockCategoryUsecase_ListCategories_Call {
	_c.Call.Return(run)
	return _c
}

// GetCategory provides a mock function with given fields: ctx, id
func (_m *MockCategoryUsecase) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetCategory")
	}

	var r0 *entity.Category
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Category, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Category); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Category)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCategoryUsecase_GetCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCategory'
type MockCategoryUsecase_GetCategory_Call struct {
	*mock.Call
}

// GetCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockCategoryUsecase_Expecter) GetCategory(ctx interface{}, id interface{}) *MockCategoryUsecase_GetCategory_Call {
	return &MockCategoryUsecase_GetCategory_Call{Call: _e.mock.On("GetCategory", ctx, id)}
}

func (_c *MockCategoryUsecase_GetCategory_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockCategoryUsecase_GetCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockCategoryUsecase_GetCategory_Call) Return(_a0 *entity.Category, _a1 error) *MockCategoryUsecase_GetCategory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCategoryUsecase_GetCategory_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Category, error)) *MockCategoryUsecase_GetCategory_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateCategory provides a mock function with given fields: ctx, id, input
func (_m *MockCategoryUsecase) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateCategory")
	}

	var r0 *entity.Category
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateCategoryInput) (*entity.Category, error)); ok {
		return rf(ctx, id, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateCategoryInput) *entity.Category); ok {
		r0 = rf(ctx, id, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Category)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.UpdateCategoryInput) error); ok {
		r1 = rf(ctx, id, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCategoryUsecase_UpdateCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateCategory'
type MockCategoryUsecase_UpdateCategory_Call struct {
	*mock.Call
}

// UpdateCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - input *usecase.UpdateCategoryInput
func (_e *MockCategoryUsecase_Expecter) UpdateCategory(ctx interface{}, id interface{}, input interface{}) *MockCategoryUsecase_UpdateCategory_Call {
	return &MockCategoryUsecase_UpdateCategory_Call{Call: _e.mock.On("UpdateCategory", ctx, id, input)}
}

func (_c *MockCategoryUsecase_UpdateCategory_Call) Run(run func(ctx context.Context, id uuid.UUID, input *usecase.UpdateCategoryInput)) *MockCategoryUsecase_UpdateCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.UpdateCategoryInput))
	})
	return _c
}

func (_c *MockCategoryUsecase_UpdateCategory_Call) Return(_a0 *entity.Category, _a1 error) *MockCategoryUsecase_UpdateCategory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCategoryUsecase_UpdateCategory_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.UpdateCategoryInput) (*entity.Category, error)) *MockCategoryUsecase_UpdateCategory_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteCategory provides a mock function with given fields: ctx, id
func (_m *MockCategoryUsecase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteCategory")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockCategoryUsecase_DeleteCategory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteCategory'
type MockCategoryUsecase_DeleteCategory_Call struct {
	*mock.Call
}

// DeleteCategory is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockCategoryUsecase_Expecter) DeleteCategory(ctx interface{}, id interface{}) *MockCategoryUsecase_DeleteCategory_Call {
	return &MockCategoryUsecase_DeleteCategory_Call{Call: _e.mock.On("DeleteCategory", ctx, id)}
}

func (_c *MockCategoryUsecase_DeleteCategory_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockCategoryUsecase_DeleteCategory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockCategoryUsecase_DeleteCategory_Call) Return(_a0 error) *MockCategoryUsecase_DeleteCategory_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockCategoryUsecase_DeleteCategory_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockCategoryUsecase_DeleteCategory_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCategoryUsecase creates a new instance of MockCategoryUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCategoryUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCategoryUsecase {
	mock := &MockCategoryUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
