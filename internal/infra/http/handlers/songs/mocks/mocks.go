package mocks

import (
	"context"

	appsongs "github.com/angristan/todo-music-api/internal/app/services/songs"
	"github.com/stretchr/testify/mock"
)

type MockSongsService struct {
	mock.Mock
}

func (m *MockSongsService) Add(ctx context.Context, userID, trackID string) (appsongs.Song, error) {
	args := m.Called(ctx, userID, trackID)
	return args.Get(0).(appsongs.Song), args.Error(1)
}

func (m *MockSongsService) ListTrackIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)

	var trackIDs []string
	if v := args.Get(0); v != nil {
		trackIDs = v.([]string)
	}

	return trackIDs, args.Error(1)
}

func (m *MockSongsService) Delete(ctx context.Context, userID, trackID string) error {
	args := m.Called(ctx, userID, trackID)
	return args.Error(0)
}
