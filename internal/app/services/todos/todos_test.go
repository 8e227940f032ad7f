package todos_test

import (
	"context"
	"testing"
	"time"

	"github.com/angristan/todo-music-api/internal/app/services/todos"
	"github.com/angristan/todo-music-api/internal/app/services/todos/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

const userID = "auth0|123"

var now = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newService(repo *mocks.MockRepository, attachments *mocks.MockAttachmentStore) todos.Service {
	return todos.New(
		otel.Tracer("test"),
		repo,
		attachments,
		todos.WithIDGenerator(func() string { return "7f1c2d4e-0000-4000-8000-000000000001" }),
		todos.WithClock(func() time.Time { return now }),
	)
}

func TestService_List(t *testing.T) {
	t.Run("returns the user's items", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		items := []todos.TodoItem{{UserID: userID, TodoID: "a", Name: "Buy milk"}}
		repo.On("ListByUser", mock.Anything, userID).Return(items, nil).Once()

		got, err := newService(repo, &mocks.MockAttachmentStore{}).List(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		repo.On("ListByUser", mock.Anything, userID).Return(nil, nil).Once()

		got, err := newService(repo, &mocks.MockAttachmentStore{}).List(context.Background(), userID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("creates an open todo", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		t.Cleanup(func() { repo.AssertExpectations(t) })

		expected := todos.TodoItem{
			UserID:    userID,
			TodoID:    "7f1c2d4e-0000-4000-8000-000000000001",
			CreatedAt: now,
			Name:      "Buy milk",
			DueDate:   "2024-03-02",
			Done:      false,
		}
		repo.On("Create", mock.Anything, expected).Return(nil).Once()

		item, err := newService(repo, &mocks.MockAttachmentStore{}).Create(context.Background(), userID, todos.CreateTodoRequest{
			Name:    "Buy milk",
			DueDate: "2024-03-02",
		})
		require.NoError(t, err)
		assert.Equal(t, expected, item)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := &mocks.MockRepository{}

		_, err := newService(repo, &mocks.MockAttachmentStore{}).Create(context.Background(), userID, todos.CreateTodoRequest{Name: "  "})
		assert.ErrorIs(t, err, todos.ErrInvalidTodo)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	update := todos.TodoUpdate{Name: "Buy oat milk", DueDate: "2024-03-03", Done: true}

	t.Run("updates an existing todo", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		t.Cleanup(func() { repo.AssertExpectations(t) })

		repo.On("Get", mock.Anything, userID, "a").Return(&todos.TodoItem{TodoID: "a"}, nil).Once()
		repo.On("Update", mock.Anything, userID, "a", update).Return(nil).Once()

		assert.NoError(t, newService(repo, &mocks.MockAttachmentStore{}).Update(context.Background(), userID, "a", update))
	})

	t.Run("unknown todo", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		repo.On("Get", mock.Anything, userID, "missing").Return(nil, nil).Once()

		err := newService(repo, &mocks.MockAttachmentStore{}).Update(context.Background(), userID, "missing", update)
		assert.ErrorIs(t, err, todos.ErrTodoNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := &mocks.MockRepository{}

		err := newService(repo, &mocks.MockAttachmentStore{}).Update(context.Background(), userID, "a", todos.TodoUpdate{})
		assert.ErrorIs(t, err, todos.ErrInvalidTodo)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("removes the attachment and the todo", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		attachments := &mocks.MockAttachmentStore{}
		t.Cleanup(func() {
			repo.AssertExpectations(t)
			attachments.AssertExpectations(t)
		})

		repo.On("Get", mock.Anything, userID, "a").
			Return(&todos.TodoItem{TodoID: "a", AttachmentURL: "http://localhost:9000/images/att-1"}, nil).
			Once()
		attachments.On("Delete", mock.Anything, "att-1").Return(nil).Once()
		repo.On("Delete", mock.Anything, userID, "a").Return(nil).Once()

		assert.NoError(t, newService(repo, attachments).Delete(context.Background(), userID, "a"))
	})

	t.Run("todo without attachment", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		attachments := &mocks.MockAttachmentStore{}

		repo.On("Get", mock.Anything, userID, "a").Return(&todos.TodoItem{TodoID: "a"}, nil).Once()
		repo.On("Delete", mock.Anything, userID, "a").Return(nil).Once()

		assert.NoError(t, newService(repo, attachments).Delete(context.Background(), userID, "a"))
		attachments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown todo", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		repo.On("Get", mock.Anything, userID, "missing").Return(nil, nil).Once()

		err := newService(repo, &mocks.MockAttachmentStore{}).Delete(context.Background(), userID, "missing")
		assert.ErrorIs(t, err, todos.ErrTodoNotFound)
	})

	t.Run("attachment removal error keeps the todo", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		attachments := &mocks.MockAttachmentStore{}

		repo.On("Get", mock.Anything, userID, "a").
			Return(&todos.TodoItem{TodoID: "a", AttachmentURL: "http://localhost:9000/images/att-1"}, nil).
			Once()
		attachments.On("Delete", mock.Anything, "att-1").Return(assert.AnError).Once()

		err := newService(repo, attachments).Delete(context.Background(), userID, "a")
		assert.ErrorIs(t, err, assert.AnError)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_AttachmentUploadURL(t *testing.T) {
	t.Run("records the attachment and presigns the upload", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		attachments := &mocks.MockAttachmentStore{}
		t.Cleanup(func() {
			repo.AssertExpectations(t)
			attachments.AssertExpectations(t)
		})

		attachmentID := "7f1c2d4e-0000-4000-8000-000000000001"
		objectURL := "http://localhost:9000/images/" + attachmentID

		repo.On("Get", mock.Anything, userID, "a").Return(&todos.TodoItem{TodoID: "a"}, nil).Once()
		attachments.On("ObjectURL", attachmentID).Return(objectURL).Once()
		repo.On("SetAttachmentURL", mock.Anything, userID, "a", objectURL).Return(nil).Once()
		attachments.On("UploadURL", mock.Anything, attachmentID).Return(objectURL+"?X-Amz-Signature=abc", nil).Once()

		uploadURL, err := newService(repo, attachments).AttachmentUploadURL(context.Background(), userID, "a")
		require.NoError(t, err)
		assert.Equal(t, objectURL+"?X-Amz-Signature=abc", uploadURL)
	})

	t.Run("unknown todo", func(t *testing.T) {
		repo := &mocks.MockRepository{}
		repo.On("Get", mock.Anything, userID, "missing").Return(nil, nil).Once()

		_, err := newService(repo, &mocks.MockAttachmentStore{}).AttachmentUploadURL(context.Background(), userID, "missing")
		assert.ErrorIs(t, err, todos.ErrTodoNotFound)
	})
}
