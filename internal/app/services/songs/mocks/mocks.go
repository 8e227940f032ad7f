package mocks

import (
	"context"

	"github.com/angristan/todo-music-api/internal/app/services/songs"
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Put(ctx context.Context, song songs.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockRepository) Get(ctx context.Context, userID, trackID string) (*songs.Song, error) {
	args := m.Called(ctx, userID, trackID)

	var song *songs.Song
	if v := args.Get(0); v != nil {
		song = v.(*songs.Song)
	}

	return song, args.Error(1)
}

func (m *MockRepository) ListByUser(ctx context.Context, userID string) ([]songs.Song, error) {
	args := m.Called(ctx, userID)

	var out []songs.Song
	if v := args.Get(0); v != nil {
		out = v.([]songs.Song)
	}

	return out, args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, trackID string) error {
	args := m.Called(ctx, userID, trackID)
	return args.Error(0)
}
