package songs

import (
	"context"

	appsongs "github.com/angristan/todo-music-api/internal/app/services/songs"
)

type SongsService interface {
	Add(ctx context.Context, userID, trackID string) (appsongs.Song, error)
	ListTrackIDs(ctx context.Context, userID string) ([]string, error)
	Delete(ctx context.Context, userID, trackID string) error
}
