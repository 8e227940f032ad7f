package todos

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

func (s Service) List(ctx context.Context, userID string) ([]TodoItem, error) {
	ctx, span := s.tracer.Start(ctx, "TodosService.List")
	defer span.End()

	items, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("s.repository.ListByUser: %w", err)
	}
	if items == nil {
		items = []TodoItem{}
	}

	span.SetAttributes(attribute.Int("todos", len(items)))

	return items, nil
}

func (s Service) Create(ctx context.Context, userID string, request CreateTodoRequest) (TodoItem, error) {
	ctx, span := s.tracer.Start(ctx, "TodosService.Create")
	defer span.End()

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return TodoItem{}, fmt.Errorf("%w: name is required", ErrInvalidTodo)
	}

	item := TodoItem{
		UserID:    userID,
		TodoID:    s.newID(),
		CreatedAt: s.now().UTC(),
		Name:      name,
		DueDate:   request.DueDate,
		Done:      false,
	}

	span.SetAttributes(attribute.String("todo_id", item.TodoID))

	if err := s.repository.Create(ctx, item); err != nil {
		span.RecordError(err)
		return TodoItem{}, fmt.Errorf("s.repository.Create: %w", err)
	}

	return item, nil
}

func (s Service) Update(ctx context.Context, userID, todoID string, update TodoUpdate) error {
	ctx, span := s.tracer.Start(ctx, "TodosService.Update")
	defer span.End()

	span.SetAttributes(attribute.String("todo_id", todoID))

	if strings.TrimSpace(update.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTodo)
	}

	if _, err := s.get(ctx, userID, todoID); err != nil {
		return err
	}

	if err := s.repository.Update(ctx, userID, todoID, update); err != nil {
		span.RecordError(err)
		return fmt.Errorf("s.repository.Update: %w", err)
	}

	return nil
}

// Delete removes the todo and its attachment, if any.
func (s Service) Delete(ctx context.Context, userID, todoID string) error {
	ctx, span := s.tracer.Start(ctx, "TodosService.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("todo_id", todoID))

	item, err := s.get(ctx, userID, todoID)
	if err != nil {
		return err
	}

	if attachmentID := attachmentIDFromURL(item.AttachmentURL); attachmentID != "" {
		if err := s.attachments.Delete(ctx, attachmentID); err != nil {
			span.RecordError(err)
			return fmt.Errorf("s.attachments.Delete: %w", err)
		}
	}

	if err := s.repository.Delete(ctx, userID, todoID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("s.repository.Delete: %w", err)
	}

	return nil
}

// AttachmentUploadURL records a new attachment on the todo and returns a
// presigned URL the client uploads the file to.
func (s Service) AttachmentUploadURL(ctx context.Context, userID, todoID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "TodosService.AttachmentUploadURL")
	defer span.End()

	span.SetAttributes(attribute.String("todo_id", todoID))

	if _, err := s.get(ctx, userID, todoID); err != nil {
		return "", err
	}

	attachmentID := s.newID()

	if err := s.repository.SetAttachmentURL(ctx, userID, todoID, s.attachments.ObjectURL(attachmentID)); err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("s.repository.SetAttachmentURL: %w", err)
	}

	uploadURL, err := s.attachments.UploadURL(ctx, attachmentID)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("s.attachments.UploadURL: %w", err)
	}

	return uploadURL, nil
}

func (s Service) get(ctx context.Context, userID, todoID string) (*TodoItem, error) {
	item, err := s.repository.Get(ctx, userID, todoID)
	if err != nil {
		return nil, fmt.Errorf("s.repository.Get: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrTodoNotFound, todoID)
	}

	return item, nil
}

// attachmentIDFromURL returns the object key, which is the last path segment.
func attachmentIDFromURL(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	id := path.Base(u.Path)
	if id == "/" || id == "." {
		return ""
	}

	return id
}
