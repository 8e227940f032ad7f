package mocks

import (
	"context"
	"time"

	"github.com/angristan/todo-music-api/internal/app/services/catalog"
	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)

	var value []byte
	if v := args.Get(0); v != nil {
		value = v.([]byte)
	}

	return value, args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

type MockCatalogClient struct {
	mock.Mock
}

func (m *MockCatalogClient) Search(ctx context.Context, term string) ([]catalog.SearchResult, error) {
	args := m.Called(ctx, term)

	var results []catalog.SearchResult
	if v := args.Get(0); v != nil {
		results = v.([]catalog.SearchResult)
	}

	return results, args.Error(1)
}
