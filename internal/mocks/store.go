package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/devnunnez/Dev/internal/domain"
)

// MockConversationLog is a mock of domain.ConversationLog.
type MockConversationLog struct {
	mock.Mock
}

// MockConversationLog_Expecter offers typed expectation helpers.
type MockConversationLog_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockConversationLog) EXPECT() *MockConversationLog_Expecter {
	return &MockConversationLog_Expecter{mock: &_m.Mock}
}

// Append provides a mock function.
func (_m *MockConversationLog) Append(ctx context.Context, conversation *domain.Conversation) error {
	return _m.Called(ctx, conversation).Error(0)
}

// MockConversationLog_Append_Call wraps an Append expectation.
type MockConversationLog_Append_Call struct {
	*mock.Call
}

// Append expects an Append call.
func (_e *MockConversationLog_Expecter) Append(ctx interface{}, conversation interface{}) *MockConversationLog_Append_Call {
	return &MockConversationLog_Append_Call{Call: _e.mock.On("Append", ctx, conversation)}
}

// Return sets the return value.
func (_c *MockConversationLog_Append_Call) Return(err error) *MockConversationLog_Append_Call {
	_c.Call.Return(err)
	return _c
}

// Recent provides a mock function.
func (_m *MockConversationLog) Recent(ctx context.Context, limit int) ([]*domain.Conversation, error) {
	ret := _m.Called(ctx, limit)

	var conversations []*domain.Conversation
	if v := ret.Get(0); v != nil {
		conversations = v.([]*domain.Conversation)
	}

	return conversations, ret.Error(1)
}

// MockConversationLog_Recent_Call wraps a Recent expectation.
type MockConversationLog_Recent_Call struct {
	*mock.Call
}

// Recent expects a Recent call.
func (_e *MockConversationLog_Expecter) Recent(ctx interface{}, limit interface{}) *MockConversationLog_Recent_Call {
	return &MockConversationLog_Recent_Call{Call: _e.mock.On("Recent", ctx, limit)}
}

// Return sets the return values.
func (_c *MockConversationLog_Recent_Call) Return(
	conversations []*domain.Conversation,
	err error,
) *MockConversationLog_Recent_Call {
	_c.Call.Return(conversations, err)
	return _c
}

// NewMockConversationLog creates a MockConversationLog whose expectations are asserted on cleanup.
func NewMockConversationLog(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockConversationLog {
	m := &MockConversationLog{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPreviewStore is a mock of domain.PreviewStore.
type MockPreviewStore struct {
	mock.Mock
}

// MockPreviewStore_Expecter offers typed expectation helpers.
type MockPreviewStore_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the typed expecter.
func (_m *MockPreviewStore) EXPECT() *MockPreviewStore_Expecter {
	return &MockPreviewStore_Expecter{mock: &_m.Mock}
}

// SavePreview provides a mock function.
func (_m *MockPreviewStore) SavePreview(ctx context.Context, preview *domain.Preview) error {
	return _m.Called(ctx, preview).Error(0)
}

// MockPreviewStore_SavePreview_Call wraps a SavePreview expectation.
type MockPreviewStore_SavePreview_Call struct {
	*mock.Call
}

// SavePreview expects a SavePreview call.
func (_e *MockPreviewStore_Expecter) SavePreview(ctx interface{}, preview interface{}) *MockPreviewStore_SavePreview_Call {
	return &MockPreviewStore_SavePreview_Call{Call: _e.mock.On("SavePreview", ctx, preview)}
}

// Return sets the return value.
func (_c *MockPreviewStore_SavePreview_Call) Return(err error) *MockPreviewStore_SavePreview_Call {
	_c.Call.Return(err)
	return _c
}

// GetPreview provides a mock function.
func (_m *MockPreviewStore) GetPreview(ctx context.Context, id string) (*domain.Preview, error) {
	ret := _m.Called(ctx, id)

	var preview *domain.Preview
	if v := ret.Get(0); v != nil {
		preview = v.(*domain.Preview)
	}

	return preview, ret.Error(1)
}

// MockPreviewStore_GetPreview_Call wraps a GetPreview expectation.
type MockPreviewStore_GetPreview_Call struct {
	*mock.Call
}

// GetPreview expects a GetPreview call.
func (_e *MockPreviewStore_Expecter) GetPreview(ctx interface{}, id interface{}) *MockPreviewStore_GetPreview_Call {
	return &MockPreviewStore_GetPreview_Call{Call: _e.mock.On("GetPreview", ctx, id)}
}

// Return sets the return values.
func (_c *MockPreviewStore_GetPreview_Call) Return(preview *domain.Preview, err error) *MockPreviewStore_GetPreview_Call {
	_c.Call.Return(preview, err)
	return _c
}

// NewMockPreviewStore creates a MockPreviewStore whose expectations are asserted on cleanup.
func NewMockPreviewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPreviewStore {
	m := &MockPreviewStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
