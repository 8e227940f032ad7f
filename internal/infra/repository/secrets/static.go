package secrets

import (
	"context"
	"errors"

	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
)

var ErrSecretNotFound = errors.New("secret not found")

// StaticStore serves secrets from memory. It backs local runs where no
// secret store is reachable.
type StaticStore map[string]Secret

func (s StaticStore) Fetch(_ context.Context, name string) (Secret, error) {
	secret, ok := s[name]
	if !ok {
		return nil, infraerrors.NewUpstreamError("static", "read "+name, ErrSecretNotFound)
	}

	out := make(Secret, len(secret))
	for k, v := range secret {
		out[k] = v
	}

	return out, nil
}
