package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock type for the UserUsecase type
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

// CreateUser provides a mock function with given fields: ctx, input
func (_m *MockUserUsecase) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateUser")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateUserInput) (*entity.User, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateUserInput) *entity.User); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.CreateUserInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_CreateUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateUser'
type MockUserUsecase_CreateUser_Call struct {
	*mock.Call
}

// CreateUser is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.CreateUserInput
func (_e *MockUserUsecase_Expecter) CreateUser(ctx interface{}, input interface{}) *MockUserUsecase_CreateUser_Call {
	return &MockUserUsecase_CreateUser_Call{Call: _e.mock.On("CreateUser", ctx, input)}
}

func (_c *MockUserUsecase_CreateUser_Call) Run(run func(ctx context.Context, input *usecase.CreateUserInput)) *MockUserUsecase_CreateUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.CreateUserInput))
	})
	return _c
}

func (_c *MockUserUsecase_CreateUser_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_CreateUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_CreateUser_Call) RunAndReturn(run func(context.Context, *usecase.CreateUserInput) (*entity.User, error)) *MockUserUsecase_CreateUser_Call {
	_c.Call.Return(run)
	return _c
}

// ListUsers provides a mock function with given fields: ctx, page, limit
func (_m *MockUserUsecase) ListUsers(ctx context.Context, page int, limit int) ([]*entity.User, error) {
	ret := _m.Called(ctx, page, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListUsers")
	}

	var r0 []*entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int, int) ([]*entity.User, error)); ok {
		return rf(ctx, page, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int, int) []*entity.User); ok {
		r0 = rf(ctx, page, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int, int) error); ok {
		r1 = rf(ctx, page, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_ListUsers_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListUsers'
type MockUserUsecase_ListUsers_Call struct {
	*mock.Call
}

// ListUsers is a helper method to define mock.On call
//   - ctx context.Context
//   - page int
//   - limit int
func (_e *MockUserUsecase_Expecter) ListUsers(ctx interface{}, page interface{}, limit interface{}) *MockUserUsecase_ListUsers_Call {
	return &MockUserUsecase_ListUsers_Call{Call: _e.mock.On("ListUsers", ctx, page, limit)}
}

func (_c *MockUserUsecase_ListUsers_Call) Run(run func(ctx context.Context, page int, limit int)) *MockUserUsecase_ListUsers_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int), args[2].(int))
	})
	return _c
}

func (_c *MockUserUsecase_ListUsers_Call) Return(_a0 []*entity.User, _a1 error) *MockUserUsecase_ListUsers_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_ListUsers_Call) RunAndReturn(run func(context.Context, int, int) ([]*entity.User, error)) *MockUserUsecase_ListUsers_Call {
	_c.Call.Return(run)
	return _c
}

// GetUser provides a mock function with given fields: ctx, id
func (_m *MockUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetUser")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.User, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_GetUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetUser'
type MockUserUsecase_GetUser_Call struct {
	*mock.Call
}

// GetUser is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockUserUsecase_Expecter) GetUser(ctx interface{}, id interface{}) *MockUserUsecase_GetUser_Call {
	return &MockUserUsecase_GetUser_Call{Call: _e.mock.On("GetUser", ctx, id)}
}

func (_c *MockUserUsecase_GetUser_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockUserUsecase_GetUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockUserUsecase_GetUser_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_GetUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_GetUser_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.User, error)) *MockUserUsecase_GetUser_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateUser provides a mock function with given fields: ctx, id, input
func (_m *MockUserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput) (*entity.User, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateUser")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateUserInput) (*entity.User, error)); ok {
		return rf(ctx, id, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateUserInput) *entity.User); ok {
		r0 = rf(ctx, id, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.UpdateUserInput) error); ok {
		r1 = rf(ctx, id, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUserUsecase_UpdateUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateUser'
type MockUserUsecase_UpdateUser_Call struct {
	*mock.Call
}

// UpdateUser is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - input *usecase.UpdateUserInput
func (_e *MockUserUsecase_Expecter) UpdateUser(ctx interface{}, id interface{}, input interface{}) *MockUserUsecase_UpdateUser_Call {
	return &MockUserUsecase_UpdateUser_Call{Call: _e.mock.On("UpdateUser", ctx, id, input)}
}

func (_c *MockUserUsecase_UpdateUser_Call) Run(run func(ctx context.Context, id uuid.UUID, input *usecase.UpdateUserInput)) *MockUserUsecase_UpdateUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.UpdateUserInput))
	})
	return _c
}

func (_c *MockUserUsecase_UpdateUser_Call) Return(_a0 *entity.User, _a1 error) *MockUserUsecase_UpdateUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUserUsecase_UpdateUser_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.UpdateUserInput) (*entity.User, error)) *MockUserUsecase_UpdateUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	mock := &MockUserUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
