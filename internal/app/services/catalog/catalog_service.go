// Package catalog searches the external music catalog and trims its tracks
// to the shape served to the client.
package catalog

import (
	"errors"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const DefaultCacheTTL = time.Hour * 24

type SearchService struct {
	tracer        trace.Tracer
	catalogClient CatalogClient
	cache         Cache
	cacheTTL      time.Duration
}

func New(
	tracer trace.Tracer,
	catalogClient CatalogClient,
	cache Cache,
	cacheTTL time.Duration,
) SearchService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return SearchService{
		tracer:        tracer,
		catalogClient: catalogClient,
		cache:         cache,
		cacheTTL:      cacheTTL,
	}
}

var (
	ErrEmptySearchTerm = errors.New("search term is required")
	ErrCatalogClient   = errors.New("catalog client error")
)
