package mocks

import (
	"context"

	"github.com/angristan/todo-music-api/internal/app/services/todos"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]todos.TodoItem, error) {
	args := m.Called(ctx, userID)

	var items []todos.TodoItem
	if v := args.Get(0); v != nil {
		items = v.([]todos.TodoItem)
	}

	return items, args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, userID, todoID string) (*todos.TodoItem, error) {
	args := m.Called(ctx, userID, todoID)

	var item *todos.TodoItem
	if v := args.Get(0); v != nil {
		item = v.(*todos.TodoItem)
	}

	return item, args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, item todos.TodoItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, userID, todoID string, update todos.TodoUpdate) error {
	args := m.Called(ctx, userID, todoID, update)
	return args.Error(0)
}

func (m *MockRepository) SetAttachmentURL(ctx context.Context, userID, todoID, attachmentURL string) error {
	args := m.Called(ctx, userID, todoID, attachmentURL)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, userID, todoID string) error {
	args := m.Called(ctx, userID, todoID)
	return args.Error(0)
}

type MockAttachmentStore struct {
	mock.Mock
}

func (m *MockAttachmentStore) UploadURL(ctx context.Context, attachmentID string) (string, error) {
	args := m.Called(ctx, attachmentID)
	return args.String(0), args.Error(1)
}

func (m *MockAttachmentStore) ObjectURL(attachmentID string) string {
	args := m.Called(attachmentID)
	return args.String(0)
}

func (m *MockAttachmentStore) Delete(ctx context.Context, attachmentID string) error {
	args := m.Called(ctx, attachmentID)
	return args.Error(0)
}
