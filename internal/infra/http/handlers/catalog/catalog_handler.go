package catalog

import (
	"go.opentelemetry.io/otel/trace"
)

type CatalogHandler struct {
	tracer        trace.Tracer
	searchService SearchService
}

func New(
	tracer trace.Tracer,
	searchService SearchService,
) *CatalogHandler {
	return &CatalogHandler{
		tracer:        tracer,
		searchService: searchService,
	}
}
