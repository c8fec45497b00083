package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/shopspring/decimal"
)

// MockInvestmentUsecase is a mock type for the InvestmentUsecase type
type MockInvestmentUsecase struct {
	mock.Mock
}

type MockInvestmentUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockInvestmentUsecase) EXPECT() *MockInvestmentUsecase_Expecter {
	return &MockInvestmentUsecase_Expecter{mock: &_m.Mock}
}

// CreateInvestment provides a mock function with given fields: ctx, input
func (_m *MockInvestmentUsecase) CreateInvestment(ctx context.Context, input *usecase.CreateInvestmentInput) (*entity.Investment, error) {
	ret := _m.Called(ctx, input)

	if len(ret) == 0 {
		panic("no return value specified for CreateInvestment")
	}

	var r0 *entity.Investment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateInvestmentInput) (*entity.Investment, error)); ok {
		return rf(ctx, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *usecase.CreateInvestmentInput) *entity.Investment); ok {
		r0 = rf(ctx, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Investment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *usecase.CreateInvestmentInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvestmentUsecase_CreateInvestment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreateInvestment'
type MockInvestmentUsecase_CreateInvestment_Call struct {
	*mock.Call
}

// CreateInvestment is a helper method to define mock.On call
//   - ctx context.Context
//   - input *usecase.CreateInvestmentInput
func (_e *MockInvestmentUsecase_Expecter) CreateInvestment(ctx interface{}, input interface{}) *MockInvestmentUsecase_CreateInvestment_Call {
	return &MockInvestmentUsecase_CreateInvestment_Call{Call: _e.mock.On("CreateInvestment", ctx, input)}
}

func (_c *MockInvestmentUsecase_CreateInvestment_Call) Run(run func(ctx context.Context, input *usecase.CreateInvestmentInput)) *MockInvestmentUsecase_CreateInvestment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*usecase.CreateInvestmentInput))
	})
	return _c
}

func (_c *MockInvestmentUsecase_CreateInvestment_Call) Return(_a0 *entity.Investment, _a1 error) *MockInvestmentUsecase_CreateInvestment_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentUsecase_CreateInvestment_Call) RunAndReturn(run func(context.Context, *usecase.CreateInvestmentInput) (*entity.Investment, error)) *MockInvestmentUsecase_CreateInvestment_Call {
	_c.Call.Return(run)
	return _c
}

// ListInvestments provides a mock function with given fields: ctx
func (_m *MockInvestmentUsecase) ListInvestments(ctx context.Context) ([]*entity.Investment, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListInvestments")
	}

	var r0 []*entity.Investment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Investment, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Investment); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.Investment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvestmentUsecase_ListInvestments_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListInvestments'
type MockInvestmentUsecase_ListInvestments_Call struct {
	*mock.Call
}

// ListInvestments is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockInvestmentUsecase_Expecter) ListInvestments(ctx interface{}) *MockInvestmentUsecase_ListInvestments_Call {
	return &MockInvestmentUsecase_ListInvestments_Call{Call: _e.mock.On("ListInvestments", ctx)}
}

func (_c *MockInvestmentUsecase_ListInvestments_Call) Run(run func(ctx context.Context)) *MockInvestmentUsecase_ListInvestments_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockInvestmentUsecase_ListInvestments_Call) Return(_a0 []*entity.Investment, _a1 error) *MockInvestmentUsecase_ListInvestments_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentUsecase_ListInvestments_Call) RunAndReturn(run func(context.Context) ([]*entity.Investment, error)) *MockInvestmentUsecase_ListInvestments_Call {
	_c.Call.Return(run)
	return _c
}

// GetInvestment provides a mock function with given fields: ctx, id
func (_m *MockInvestmentUsecase) GetInvestment(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetInvestment")
	}

	var r0 *entity.Investment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*entity.Investment, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *entity.Investment); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Investment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvestmentUsecase_GetInvestment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetInvestment'
type MockInvestmentUsecase_GetInvestment_Call struct {
	*mock.Call
}

// GetInvestment is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockInvestmentUsecase_Expecter) GetInvestment(ctx interface{}, id interface{}) *MockInvestmentUsecase_GetInvestment_Call {
	return &MockInvestmentUsecase_GetInvestment_Call{Call: _e.mock.On("GetInvestment", ctx, id)}
}

func (_c *MockInvestmentUsecase_GetInvestment_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockInvestmentUsecase_GetInvestment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentUsecase_GetInvestment_Call) Return(_a0 *entity.Investment, _a1 error) *MockInvestmentUsecase_GetInvestment_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentUsecase_GetInvestment_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Investment, error)) *MockInvestmentUsecase_GetInvestment_Call {
	_c.Call.Return(run)
	return _c
}

// UpdateInvestment provides a mock function with given fields: ctx, id, input
func (_m *MockInvestmentUsecase) UpdateInvestment(ctx context.Context, id uuid.UUID, input *usecase.UpdateInvestmentInput) (*entity.Investment, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for UpdateInvestment")
	}

	var r0 *entity.Investment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateInvestmentInput) (*entity.Investment, error)); ok {
		return rf(ctx, id, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.UpdateInvestmentInput) *entity.Investment); ok {
		r0 = rf(ctx, id, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Investment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.UpdateInvestmentInput) error); ok {
		r1 = rf(ctx, id, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvestmentUsecase_UpdateInvestment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'UpdateInvestment'
type MockInvestmentUsecase_UpdateInvestment_Call struct {
	*mock.Call
}

// UpdateInvestment is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - input *usecase.UpdateInvestmentInput
func (_e *MockInvestmentUsecase_Expecter) UpdateInvestment(ctx interface{}, id interface{}, input interface{}) *MockInvestmentUsecase_UpdateInvestment_Call {
	return &MockInvestmentUsecase_UpdateInvestment_Call{Call: _e.mock.On("UpdateInvestment", ctx, id, input)}
}

func (_c *MockInvestmentUsecase_UpdateInvestment_Call) Run(run func(ctx context.Context, id uuid.UUID, input *usecase.UpdateInvestmentInput)) *MockInvestmentUsecase_UpdateInvestment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.UpdateInvestmentInput))
	})
	return _c
}

func (_c *MockInvestmentUsecase_UpdateInvestment_Call) Return(_a0 *entity.Investment, _a1 error) *MockInvestmentUsecase_UpdateInvestment_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentUsecase_UpdateInvestment_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.UpdateInvestmentInput) (*entity.Investment, error)) *MockInvestmentUsecase_UpdateInvestment_Call {
	_c.Call.Return(run)
	return _c
}

// DeleteInvestment provides a mock function with given fields: ctx, id
func (_m *MockInvestmentUsecase) DeleteInvestment(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for DeleteInvestment")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockInvestmentUsecase_DeleteInvestment_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'DeleteInvestment'
type MockInvestmentUsecase_DeleteInvestment_Call struct {
	*mock.Call
}

// DeleteInvestment is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockInvestmentUsecase_Expecter) DeleteInvestment(ctx interface{}, id interface{}) *MockInvestmentUsecase_DeleteInvestment_Call {
	return &MockInvestmentUsecase_DeleteInvestment_Call{Call: _e.mock.On("DeleteInvestment", ctx, id)}
}

func (_c *MockInvestmentUsecase_DeleteInvestment_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockInvestmentUsecase_DeleteInvestment_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentUsecase_DeleteInvestment_Call) Return(_a0 error) *MockInvestmentUsecase_DeleteInvestment_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockInvestmentUsecase_DeleteInvestment_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockInvestmentUsecase_DeleteInvestment_Call {
	_c.Call.Return(run)
	return _c
}

// TotalPaybackForUser provides a mock function with given fields: ctx, userID
func (_m *MockInvestmentUsecase) TotalPaybackForUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for TotalPaybackForUser")
	}

	var r0 decimal.Decimal
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (decimal.Decimal, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) decimal.Decimal); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(decimal.Decimal)
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvestmentUsecase_TotalPaybackForUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TotalPaybackForUser'
type MockInvestmentUsecase_TotalPaybackForUser_Call struct {
	*mock.Call
}

// TotalPaybackForUser is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockInvestmentUsecase_Expecter) TotalPaybackForUser(ctx interface{}, userID interface{}) *MockInvestmentUsecase_TotalPaybackForUser_Call {
	return &MockInvestmentUsecase_TotalPaybackForUser_Call{Call: _e.mock.On("TotalPaybackForUser", ctx, userID)}
}

func (_c *MockInvestmentUsecase_TotalPaybackForUser_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockInvestmentUsecase_TotalPaybackForUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentUsecase_TotalPaybackForUser_Call) Return(_a0 decimal.Decimal, _a1 error) *MockInvestmentUsecase_TotalPaybackForUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentUsecase_TotalPaybackForUser_Call) RunAndReturn(run func(context.Context, uuid.UUID) (decimal.Decimal, error)) *MockInvestmentUsecase_TotalPaybackForUser_Call {
	_c.Call.Return(run)
	return _c
}

// LatestPaybackEntry provides a mock function with given fields: ctx, id
func (_m *MockInvestmentUsecase) LatestPaybackEntry(ctx context.Context, id uuid.UUID) (*usecase.LatestPayback, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for LatestPaybackEntry")
	}

	var r0 *usecase.LatestPayback
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) (*usecase.LatestPayback, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *usecase.LatestPayback); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.LatestPayback)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvestmentUsecase_LatestPaybackEntry_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'LatestPaybackEntry'
type MockInvestmentUsecase_LatestPaybackEntry_Call struct {
	*mock.Call
}

// LatestPaybackEntry is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockInvestmentUsecase_Expecter) LatestPaybackEntry(ctx interface{}, id interface{}) *MockInvestmentUsecase_LatestPaybackEntry_Call {
	return &MockInvestmentUsecase_LatestPaybackEntry_Call{Call: _e.mock.On("LatestPaybackEntry", ctx, id)}
}

func (_c *MockInvestmentUsecase_LatestPaybackEntry_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockInvestmentUsecase_LatestPaybackEntry_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentUsecase_LatestPaybackEntry_Call) Return(_a0 *usecase.LatestPayback, _a1 error) *MockInvestmentUsecase_LatestPaybackEntry_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentUsecase_LatestPaybackEntry_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*usecase.LatestPayback, error)) *MockInvestmentUsecase_LatestPaybackEntry_Call {
	_c.Call.Return(run)
	return _c
}

// RecordPayback provides a mock function with given fields: ctx, id, input
func (_m *MockInvestmentUsecase) RecordPayback(ctx context.Context, id uuid.UUID, input *usecase.RecordPaybackInput) (*entity.Investment, error) {
	ret := _m.Called(ctx, id, input)

	if len(ret) == 0 {
		panic("no return value specified for RecordPayback")
	}

	var r0 *entity.Investment
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.RecordPaybackInput) (*entity.Investment, error)); ok {
		return rf(ctx, id, input)
	}
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, *usecase.RecordPaybackInput) *entity.Investment); ok {
		r0 = rf(ctx, id, input)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Investment)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, uuid.UUID, *usecase.RecordPaybackInput) error); ok {
		r1 = rf(ctx, id, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockInvestmentUsecase_RecordPayback_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RecordPayback'
type MockInvestmentUsecase_RecordPayback_Call struct {
	*mock.Call
}

// RecordPayback is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
//   - input *usecase.RecordPaybackInput
func (_e *MockInvestmentUsecase_Expecter) RecordPayback(ctx interface{}, id interface{}, input interface{}) *MockInvestmentUsecase_RecordPayback_Call {
	return &MockInvestmentUsecase_RecordPayback_Call{Call: _e.mock.On("RecordPayback", ctx, id, input)}
}

func (_c *MockInvestmentUsecase_RecordPayback_Call) Run(run func(ctx context.Context, id uuid.UUID, input *usecase.RecordPaybackInput)) *MockInvestmentUsecase_RecordPayback_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID), args[2].(*usecase.RecordPaybackInput))
	})
	return _c
}

func (_c *MockInvestmentUsecase_RecordPayback_Call) Return(_a0 *entity.Investment, _a1 error) *MockInvestmentUsecase_RecordPayback_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentUsecase_RecordPayback_Call) RunAndReturn(run func(context.Context, uuid.UUID, *usecase.RecordPaybackInput) (*entity.Investment, error)) *MockInvestmentUsecase_RecordPayback_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockInvestmentUsecase creates a new instance of MockInvestmentUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockInvestmentUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvestmentUsecase {
	mock := &MockInvestmentUsecase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
