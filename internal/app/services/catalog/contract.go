package catalog

import (
	"context"
	"time"
)

type Cache interface {
	// Get reports found=false on a miss.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type CatalogClient interface {
	Search(ctx context.Context, term string) ([]SearchResult, error)
}
