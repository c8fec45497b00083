package service

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockStatsCache is a mock type for the StatsCache type
type MockStatsCache struct {
	mock.Mock
}

type MockStatsCache_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStatsCache) EXPECT() *MockStatsCache_Expecter {
	return &MockStatsCache_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, field, dest
func (_m *MockStatsCache) Get(ctx context.Context, field string, dest any) (service.Generation, error) {
	ret := _m.Called(ctx, field, dest)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 service.Generation
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, any) (service.Generation, error)); ok {
		return rf(ctx, field, dest)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, any) service.Generation); ok {
		r0 = rf(ctx, field, dest)
	} else {
		r0 = ret.Get(0).(service.Generation)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, any) error); ok {
		r1 = rf(ctx, field, dest)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockStatsCache_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockStatsCache_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
//   - ctx context.Context
//   - field string
//   - dest any
func (_e *MockStatsCache_Expecter) Get(ctx interface{}, field interface{}, dest interface{}) *MockStatsCache_Get_Call {
	return &MockStatsCache_Get_Call{Call: _e.mock.On("Get", ctx, field, dest)}
}

func (_c *MockStatsCache_Get_Call) Run(run func(ctx context.Context, field string, dest any)) *MockStatsCache_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(any))
	})
	return _c
}

func (_c *MockStatsCache_Get_Call) Return(_a0 service.Generation, _a1 error) *MockStatsCache_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockStatsCache_Get_Call) RunAndReturn(run func(context.Context, string, any) (service.Generation, error)) *MockStatsCache_Get_Call {
	_c.Call.Return(run)
	return _c
}

// Set provides a mock function with given fields: ctx, gen, field, value
func (_m *MockStatsCache) Set(ctx context.Context, gen service.Generation, field string, value any) error {
	ret := _m.Called(ctx, gen, field, value)

	if len(ret) == 0 {
		panic("no return value specified for Set")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, service.Generation, string, any) error); ok {
		r0 = rf(ctx, gen, field, value)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStatsCache_Set_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Set'
type MockStatsCache_Set_Call struct {
	*mock.Call
}

// Set is a helper method to define mock.On call
//   - ctx context.Context
//   - gen service.Generation
//   - field string
//   - value any
func (_e *MockStatsCache_Expecter) Set(ctx interface{}, gen interface{}, field interface{}, value interface{}) *MockStatsCache_Set_Call {
	return &MockStatsCache_Set_Call{Call: _e.mock.On("Set", ctx, gen, field, value)}
}

func (_c *MockStatsCache_Set_Call) Run(run func(ctx context.Context, gen service.Generation, field string, value any)) *MockStatsCache_Set_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(service.Generation), args[2].(string), args[3].(any))
	})
	return _c
}

func (_c *MockStatsCache_Set_Call) Return(_a0 error) *MockStatsCache_Set_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStatsCache_Set_Call) RunAndReturn(run func(context.Context, service.Generation, string, any) error) *MockStatsCache_Set_Call {
	_c.Call.Return(run)
	return _c
}

// Invalidate provides a mock function with given fields: ctx
func (_m *MockStatsCache) Invalidate(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Invalidate")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockStatsCache_Invalidate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Invalidate'
type MockStatsCache_Invalidate_Call struct {
	*mock.Call
}

// Invalidate is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockStatsCache_Expecter) Invalidate(ctx interface{}) *MockStatsCache_Invalidate_Call {
	return &MockStatsCache_Invalidate_Call{Call: _e.mock.On("Invalidate", ctx)}
}

func (_c *MockStatsCache_Invalidate_Call) Run(run func(ctx context.Context)) *MockStatsCache_Invalidate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockStatsCache_Invalidate_Call) Return(_a0 error) *MockStatsCache_Invalidate_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStatsCache_Invalidate_Call) RunAndReturn(run func(context.Context) error) *MockStatsCache_Invalidate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStatsCache creates a new instance of MockStatsCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockStatsCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatsCache {
	mock := &MockStatsCache{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
