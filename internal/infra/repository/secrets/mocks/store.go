package mocks

import (
	"context"

	"github.com/angristan/todo-music-api/internal/infra/repository/secrets"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Fetch(ctx context.Context, name string) (secrets.Secret, error) {
	args := m.Called(ctx, name)

	var secret secrets.Secret
	if v := args.Get(0); v != nil {
		secret = v.(secrets.Secret)
	}

	return secret, args.Error(1)
}
