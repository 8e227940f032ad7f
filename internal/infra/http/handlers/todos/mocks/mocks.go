package mocks

import (
	"context"

	apptodos "github.com/angristan/todo-music-api/internal/app/services/todos"
	"github.com/stretchr/testify/mock"
)

type MockTodosService struct {
	mock.Mock
}

func (m *MockTodosService) List(ctx context.Context, userID string) ([]apptodos.TodoItem, error) {
	args := m.Called(ctx, userID)

	var items []apptodos.TodoItem
	if v := args.Get(0); v != nil {
		items = v.([]apptodos.TodoItem)
	}

	return items, args.Error(1)
}

func (m *MockTodosService) Create(ctx context.Context, userID string, request apptodos.CreateTodoRequest) (apptodos.TodoItem, error) {
	args := m.Called(ctx, userID, request)
	return args.Get(0).(apptodos.TodoItem), args.Error(1)
}

func (m *MockTodosService) Update(ctx context.Context, userID, todoID string, update apptodos.TodoUpdate) error {
	args := m.Called(ctx, userID, todoID, update)
	return args.Error(0)
}

func (m *MockTodosService) Delete(ctx context.Context, userID, todoID string) error {
	args := m.Called(ctx, userID, todoID)
	return args.Error(0)
}

func (m *MockTodosService) AttachmentUploadURL(ctx context.Context, userID, todoID string) (string, error) {
	args := m.Called(ctx, userID, todoID)
	return args.String(0), args.Error(1)
}
