package repository

import (
	"storefront/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

type MockRepositoryFactory_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRepositoryFactory) EXPECT() *MockRepositoryFactory_Expecter {
	return &MockRepositoryFactory_Expecter{mock: &_m.Mock}
}

// InvestmentRepo provides a mock function with given fields: 
func (_m *MockRepositoryFactory) InvestmentRepo() repository.InvestmentRepository {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for InvestmentRepo")
	}

	var r0 repository.InvestmentRepository
	if rf, ok := ret.Get(0).(func() repository.InvestmentRepository); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(repository.InvestmentRepository)
		}
	}

	return r0
}

// MockRepositoryFactory_InvestmentRepo_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'InvestmentRepo'
type MockRepositoryFactory_InvestmentRepo_Call struct {
	*mock.Call
}

// InvestmentRepo is a helper method to define mock.On call
func (_e *MockRepositoryFactory_Expecter) InvestmentRepo() *MockRepositoryFactory_InvestmentRepo_Call {
	return &MockRepositoryFactory_InvestmentRepo_Call{Call: _e.mock.On("InvestmentRepo")}
}

func (_c *MockRepositoryFactory_InvestmentRepo_Call) Run(run func()) *MockRepositoryFactory_InvestmentRepo_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockRepositoryFactory_InvestmentRepo_Call) Return(_a0 repository.InvestmentRepository) *MockRepositoryFactory_InvestmentRepo_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRepositoryFactory_InvestmentRepo_Call) RunAndReturn(run func() repository.InvestmentRepository) *MockRepositoryFactory_InvestmentRepo_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	mock := &MockRepositoryFactory{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
