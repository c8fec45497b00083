package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockInvestmentRepository is a mock type for the InvestmentRepository type
type MockInvestmentRepository struct {
	mock.Mock
}

type MockInvestmentRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockInvestmentRepository) EXPECT() *MockInvestmentRepository_Expecter {
	return &MockInvestmentRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockInvestmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
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

// MockInvestmentRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockInvestmentRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockInvestmentRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockInvestmentRepository_FindByID_Call {
	return &MockInvestmentRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockInvestmentRepository_FindByID_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockInvestmentRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentRepository_FindByID_Call) Return(_a0 *entity.Investment, _a1 error) *MockInvestmentRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentRepository_FindByID_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Investment, error)) *MockInvestmentRepository_FindByID_Call {
	_c.Call.Return(run)
	return _c
}

// FindByIDForUpdate provides a mock function with given fields: ctx, id
func (_m *MockInvestmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByIDForUpdate")
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

// MockInvestmentRepository_FindByIDForUpdate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByIDForUpdate'
type MockInvestmentRepository_FindByIDForUpdate_Call struct {
	*mock.Call
}

// FindByIDForUpdate is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockInvestmentRepository_Expecter) FindByIDForUpdate(ctx interface{}, id interface{}) *MockInvestmentRepository_FindByIDForUpdate_Call {
	return &MockInvestmentRepository_FindByIDForUpdate_Call{Call: _e.mock.On("FindByIDForUpdate", ctx, id)}
}

func (_c *MockInvestmentRepository_FindByIDForUpdate_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockInvestmentRepository_FindByIDForUpdate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentRepository_FindByIDForUpdate_Call) Return(_a0 *entity.Investment, _a1 error) *MockInvestmentRepository_FindByIDForUpdate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentRepository_FindByIDForUpdate_Call) RunAndReturn(run func(context.Context, uuid.UUID) (*entity.Investment, error)) *MockInvestmentRepository_FindByIDForUpdate_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx
func (_m *MockInvestmentRepository) List(ctx context.Context) ([]*entity.Investment, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for List")
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

// MockInvestmentRepository_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockInvestmentRepository_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockInvestmentRepository_Expecter) List(ctx interface{}) *MockInvestmentRepository_List_Call {
	return &MockInvestmentRepository_List_Call{Call: _e.mock.On("List", ctx)}
}

func (_c *MockInvestmentRepository_List_Call) Run(run func(ctx context.Context)) *MockInvestmentRepository_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockInvestmentRepository_List_Call) Return(_a0 []*entity.Investment, _a1 error) *MockInvestmentRepository_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentRepository_List_Call) RunAndReturn(run func(context.Context) ([]*entity.Investment, error)) *MockInvestmentRepository_List_Call {
	_c.Call.Return(run)
	return _c
}

// Create provides a mock function with given fields: ctx, investment
func (_m *MockInvestmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	ret := _m.Called(ctx, investment)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Investment) error); ok {
		r0 = rf(ctx, investment)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockInvestmentRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockInvestmentRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - investment *entity.Investment
func (_e *MockInvestmentRepository_Expecter) Create(ctx interface{}, investment interface{}) *MockInvestmentRepository_Create_Call {
	return &MockInvestmentRepository_Create_Call{Call: _e.mock.On("Create", ctx, investment)}
}

func (_c *MockInvestmentRepository_Create_Call) Run(run func(ctx context.Context, investment *entity.Investment)) *MockInvestmentRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Investment))
	})
	return _c
}

func (_c *MockInvestmentRepository_Create_Call) Return(_a0 error) *MockInvestmentRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockInvestmentRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Investment) error) *MockInvestmentRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, investment
func (_m *MockInvestmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	ret := _m.Called(ctx, investment)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Investment) error); ok {
		r0 = rf(ctx, investment)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockInvestmentRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockInvestmentRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - investment *entity.Investment
func (_e *MockInvestmentRepository_Expecter) Update(ctx interface{}, investment interface{}) *MockInvestmentRepository_Update_Call {
	return &MockInvestmentRepository_Update_Call{Call: _e.mock.On("Update", ctx, investment)}
}

func (_c *MockInvestmentRepository_Update_Call) Run(run func(ctx context.Context, investment *entity.Investment)) *MockInvestmentRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Investment))
	})
	return _c
}

func (_c *MockInvestmentRepository_Update_Call) Return(_a0 error) *MockInvestmentRepository_Update_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockInvestmentRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Investment) error) *MockInvestmentRepository_Update_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockInvestmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
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

// MockInvestmentRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockInvestmentRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - id uuid.UUID
func (_e *MockInvestmentRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockInvestmentRepository_Delete_Call {
	return &MockInvestmentRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockInvestmentRepository_Delete_Call) Run(run func(ctx context.Context, id uuid.UUID)) *MockInvestmentRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentRepository_Delete_Call) Return(_a0 error) *MockInvestmentRepository_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockInvestmentRepository_Delete_Call) RunAndReturn(run func(context.Context, uuid.UUID) error) *MockInvestmentRepository_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// SumPaybackByUser provides a mock function with given fields: ctx, userID
func (_m *MockInvestmentRepository) SumPaybackByUser(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for SumPaybackByUser")
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

// MockInvestmentRepository_SumPaybackByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SumPaybackByUser'
type MockInvestmentRepository_SumPaybackByUser_Call struct {
	*mock.Call
}

// SumPaybackByUser is a helper method to define mock.On call
//   - ctx context.Context
//   - userID uuid.UUID
func (_e *MockInvestmentRepository_Expecter) SumPaybackByUser(ctx interface{}, userID interface{}) *MockInvestmentRepository_SumPaybackByUser_Call {
	return &MockInvestmentRepository_SumPaybackByUser_Call{Call: _e.mock.On("SumPaybackByUser", ctx, userID)}
}

func (_c *MockInvestmentRepository_SumPaybackByUser_Call) Run(run func(ctx context.Context, userID uuid.UUID)) *MockInvestmentRepository_SumPaybackByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(uuid.UUID))
	})
	return _c
}

func (_c *MockInvestmentRepository_SumPaybackByUser_Call) Return(_a0 decimal.Decimal, _a1 error) *MockInvestmentRepository_SumPaybackByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockInvestmentRepository_SumPaybackByUser_Call) RunAndReturn(run func(context.Context, uuid.UUID) (decimal.Decimal, error)) *MockInvestmentRepository_SumPaybackByUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockInvestmentRepository creates a new instance of MockInvestmentRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockInvestmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockInvestmentRepository {
	mock := &MockInvestmentRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
