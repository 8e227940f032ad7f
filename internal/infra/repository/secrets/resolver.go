// Package secrets resolves named credential blobs from a secret store and
// keeps them in memory for the lifetime of the process.
package secrets

import (
	"context"
	"sync"

	"github.com/angristan/todo-music-api/internal/infra/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Secret is a flat mapping of field names to values. It must not be mutated
// once returned by a Resolver.
type Secret map[string]string

// Store reads a named secret.
type Store interface {
	Fetch(ctx context.Context, name string) (Secret, error)
}

// Resolver fetches one named secret at most once per process. Failed fetches
// are not remembered, so the next call tries the store again.
type Resolver struct {
	tracer trace.Tracer
	store  Store
	name   string

	mu     sync.Mutex
	cached Secret
}

func NewResolver(
	tracer trace.Tracer,
	store Store,
	name string,
) *Resolver {
	return &Resolver{
		tracer: tracer,
		store:  store,
		name:   name,
	}
}

func (r *Resolver) Get(ctx context.Context) (Secret, error) {
	ctx, span := r.tracer.Start(ctx, "Resolver.Get")
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		span.SetAttributes(attribute.Bool("cached", true))
		return r.cached, nil
	}

	secret, err := r.store.Fetch(ctx, r.name)
	metrics.SecretFetchTotal.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	r.cached = secret
	span.SetAttributes(attribute.Bool("cached", false))

	return secret, nil
}
