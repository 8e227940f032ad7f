package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/angristan/todo-music-api/internal/infra/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func (s SearchService) Search(ctx context.Context, term string) ([]SearchResult, error) {
	ctx, span := s.tracer.Start(ctx, "SearchService.Search")
	defer span.End()

	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrEmptySearchTerm
	}

	span.SetAttributes(attribute.String("query", term))

	key := "catalog:track:" + term
	if cached, ok := s.cached(ctx, key); ok {
		metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
		span.AddEvent("Cache hit")
		return cached, nil
	}
	metrics.SearchCacheTotal.WithLabelValues("miss").Inc()

	results, err := s.catalogClient.Search(ctx, term)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %w", ErrCatalogClient, err)
	}

	// Cache the result
	marshaledResults, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}
	err = s.cache.Set(ctx, key, marshaledResults, s.cacheTTL)
	if err != nil {
		span.RecordError(err)
	}

	return results, nil
}

// cached treats unreadable entries and cache errors as misses.
func (s SearchService) cached(ctx context.Context, key string) ([]SearchResult, bool) {
	span := trace.SpanFromContext(ctx)

	value, found, err := s.cache.Get(ctx, key)
	if err != nil {
		span.RecordError(err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var results []SearchResult
	if err := json.Unmarshal(value, &results); err != nil {
		span.RecordError(err)
		return nil, false
	}

	return results, true
}
