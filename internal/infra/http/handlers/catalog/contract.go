package catalog

import (
	"context"

	appcatalog "github.com/angristan/todo-music-api/internal/app/services/catalog"
)

type SearchService interface {
	Search(ctx context.Context, term string) ([]appcatalog.SearchResult, error)
}
