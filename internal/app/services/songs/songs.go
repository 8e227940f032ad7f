package songs

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
)

// Add stores the track in the user's library and returns the stored entry.
// Adding a track twice keeps the first entry.
func (s Service) Add(ctx context.Context, userID, trackID string) (Song, error) {
	ctx, span := s.tracer.Start(ctx, "SongsService.Add")
	defer span.End()

	trackID = strings.TrimSpace(trackID)
	if trackID == "" {
		return Song{}, fmt.Errorf("%w: trackId is required", ErrInvalidSong)
	}

	span.SetAttributes(attribute.String("track_id", trackID))

	song := Song{
		UserID:    userID,
		TrackID:   trackID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repository.Put(ctx, song); err != nil {
		span.RecordError(err)
		return Song{}, fmt.Errorf("s.repository.Put: %w", err)
	}

	stored, err := s.repository.Get(ctx, userID, trackID)
	if err != nil {
		span.RecordError(err)
		return Song{}, fmt.Errorf("s.repository.Get: %w", err)
	}
	if stored == nil {
		return song, nil
	}

	return *stored, nil
}

func (s Service) ListTrackIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "SongsService.ListTrackIDs")
	defer span.End()

	songs, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("s.repository.ListByUser: %w", err)
	}

	trackIDs := make([]string, 0, len(songs))
	for _, song := range songs {
		trackIDs = append(trackIDs, song.TrackID)
	}

	return trackIDs, nil
}

func (s Service) Delete(ctx context.Context, userID, trackID string) error {
	ctx, span := s.tracer.Start(ctx, "SongsService.Delete")
	defer span.End()

	song, err := s.repository.Get(ctx, userID, trackID)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("s.repository.Get: %w", err)
	}
	if song == nil {
		return fmt.Errorf("%w: %s", ErrSongNotFound, trackID)
	}

	if err := s.repository.Delete(ctx, userID, trackID); err != nil {
		span.RecordError(err)
		return fmt.Errorf("s.repository.Delete: %w", err)
	}

	return nil
}
