package mocks

import (
	"context"

	"github.com/angristan/todo-music-api/internal/infra/repository/secrets"
	"github.com/angristan/todo-music-api/internal/infra/repository/spotify"
	"github.com/stretchr/testify/mock"
)

type MockSecretResolver struct {
	mock.Mock
}

func (m *MockSecretResolver) Get(ctx context.Context) (secrets.Secret, error) {
	args := m.Called(ctx)

	var secret secrets.Secret
	if v := args.Get(0); v != nil {
		secret = v.(secrets.Secret)
	}

	return secret, args.Error(1)
}

type MockExchanger struct {
	mock.Mock
}

func (m *MockExchanger) Exchange(ctx context.Context, clientID, clientSecret string) (spotify.Grant, error) {
	args := m.Called(ctx, clientID, clientSecret)
	return args.Get(0).(spotify.Grant), args.Error(1)
}

type MockTokenSource struct {
	mock.Mock
}

func (m *MockTokenSource) Token(ctx context.Context) (spotify.CachedToken, error) {
	args := m.Called(ctx)
	return args.Get(0).(spotify.CachedToken), args.Error(1)
}
