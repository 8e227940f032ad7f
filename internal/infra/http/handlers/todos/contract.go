package todos

import (
	"context"

	apptodos "github.com/angristan/todo-music-api/internal/app/services/todos"
)

type TodosService interface {
	List(ctx context.Context, userID string) ([]apptodos.TodoItem, error)
	Create(ctx context.Context, userID string, request apptodos.CreateTodoRequest) (apptodos.TodoItem, error)
	Update(ctx context.Context, userID, todoID string, update apptodos.TodoUpdate) error
	Delete(ctx context.Context, userID, todoID string) error
	AttachmentUploadURL(ctx context.Context, userID, todoID string) (string, error)
}
