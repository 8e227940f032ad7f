// Package songs manages the tracks each user keeps in their library.
package songs

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type Song struct {
	UserID    string    `json:"userId"`
	TrackID   string    `json:"trackId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	tracer     trace.Tracer
	repository Repository
	now        func() time.Time
}

func New(
	tracer trace.Tracer,
	repository Repository,
) Service {
	return Service{
		tracer:     tracer,
		repository: repository,
		now:        time.Now,
	}
}

var (
	ErrInvalidSong  = errors.New("invalid song")
	ErrSongNotFound = errors.New("song not found")
)
