// Package todos implements the per-user todo list with file attachments.
package todos

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

type TodoItem struct {
	UserID        string    `json:"userId"`
	TodoID        string    `json:"todoId"`
	CreatedAt     time.Time `json:"createdAt"`
	Name          string    `json:"name"`
	DueDate       string    `json:"dueDate"`
	Done          bool      `json:"done"`
	AttachmentURL string    `json:"attachmentUrl,omitempty"`
}

type CreateTodoRequest struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
}

type TodoUpdate struct {
	Name    string `json:"name"`
	DueDate string `json:"dueDate"`
	Done    bool   `json:"done"`
}

type Service struct {
	tracer      trace.Tracer
	repository  Repository
	attachments AttachmentStore
	newID       func() string
	now         func() time.Time
}

type Option func(*Service)

func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	tracer trace.Tracer,
	repository Repository,
	attachments AttachmentStore,
	opts ...Option,
) Service {
	s := Service{
		tracer:      tracer,
		repository:  repository,
		attachments: attachments,
		newID:       uuid.NewString,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

var (
	ErrInvalidTodo  = errors.New("invalid todo")
	ErrTodoNotFound = errors.New("todo not found")
)
