package songs

import "context"

type Repository interface {
	Put(ctx context.Context, song Song) error
	Get(ctx context.Context, userID, trackID string) (*Song, error)
	ListByUser(ctx context.Context, userID string) ([]Song, error)
	Delete(ctx context.Context, userID, trackID string) error
}
