// Package mocks contains testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/devnunnez/Dev/internal/domain"
)

// MockProvider is a mock of domain.Provider.
type MockProvider struct {
	mock.Mock
}

// MockProvider_Expecter offers typed expectation helpers.
type MockProvider_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockProvider) EXPECT() *MockProvider_Expecter {
	return &MockProvider_Expecter{mock: &_m.Mock}
}

// Generate provides a mock function.
func (_m *MockProvider) Generate(ctx context.Context, req *domain.ProviderRequest) (string, error) {
	ret := _m.Called(ctx, req)

	if rf, ok := ret.Get(0).(func(context.Context, *domain.ProviderRequest) (string, error)); ok {
		return rf(ctx, req)
	}

	return ret.String(0), ret.Error(1)
}

// MockProvider_Generate_Call wraps a Generate expectation.
type MockProvider_Generate_Call struct {
	*mock.Call
}

// Generate expects a Generate call.
func (_e *MockProvider_Expecter) Generate(ctx interface{}, req interface{}) *MockProvider_Generate_Call {
	return &MockProvider_Generate_Call{Call: _e.mock.On("Generate", ctx, req)}
}

// Return sets the return values.
func (_c *MockProvider_Generate_Call) Return(raw string, err error) *MockProvider_Generate_Call {
	_c.Call.Return(raw, err)
	return _c
}

// RunAndReturn computes the return values with fn.
func (_c *MockProvider_Generate_Call) RunAndReturn(
	fn func(context.Context, *domain.ProviderRequest) (string, error),
) *MockProvider_Generate_Call {
	_c.Call.Return(fn)
	return _c
}

// Name provides a mock function.
func (_m *MockProvider) Name() string {
	return _m.Called().String(0)
}

// MockProvider_Name_Call wraps a Name expectation.
type MockProvider_Name_Call struct {
	*mock.Call
}

// Name expects a Name call.
func (_e *MockProvider_Expecter) Name() *MockProvider_Name_Call {
	return &MockProvider_Name_Call{Call: _e.mock.On("Name")}
}

// Return sets the return value.
func (_c *MockProvider_Name_Call) Return(name string) *MockProvider_Name_Call {
	_c.Call.Return(name)
	return _c
}

// Model provides a mock function.
func (_m *MockProvider) Model() string {
	return _m.Called().String(0)
}

// MockProvider_Model_Call wraps a Model expectation.
type MockProvider_Model_Call struct {
	*mock.Call
}

// Model expects a Model call.
func (_e *MockProvider_Expecter) Model() *MockProvider_Model_Call {
	return &MockProvider_Model_Call{Call: _e.mock.On("Model")}
}

// Return sets the return value.
func (_c *MockProvider_Model_Call) Return(model string) *MockProvider_Model_Call {
	_c.Call.Return(model)
	return _c
}

// NewMockProvider creates a MockProvider whose expectations are asserted on cleanup.
func NewMockProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProvider {
	m := &MockProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
