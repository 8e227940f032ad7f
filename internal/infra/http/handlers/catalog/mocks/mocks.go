package mocks

import (
	"context"

	appcatalog "github.com/angristan/todo-music-api/internal/app/services/catalog"
	"github.com/stretchr/testify/mock"
)

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, term string) ([]appcatalog.SearchResult, error) {
	args := m.Called(ctx, term)

	var results []appcatalog.SearchResult
	if v := args.Get(0); v != nil {
		results = v.([]appcatalog.SearchResult)
	}

	return results, args.Error(1)
}
