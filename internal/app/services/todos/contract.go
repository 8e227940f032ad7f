package todos

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]TodoItem, error)
	Get(ctx context.Context, userID, todoID string) (*TodoItem, error)
	Create(ctx context.Context, item TodoItem) error
	Update(ctx context.Context, userID, todoID string, update TodoUpdate) error
	SetAttachmentURL(ctx context.Context, userID, todoID, attachmentURL string) error
	Delete(ctx context.Context, userID, todoID string) error
}

// AttachmentStore hands out upload URLs for todo attachments and removes them.
type AttachmentStore interface {
	UploadURL(ctx context.Context, attachmentID string) (string, error)
	ObjectURL(attachmentID string) string
	Delete(ctx context.Context, attachmentID string) error
}
