package catalog

import (
	"net/http"
	"strings"

	"github.com/angristan/todo-music-api/internal/infra/http/handlers"
	"github.com/gin-gonic/gin"
)

func (h *CatalogHandler) Search(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "CatalogHandler.Search")
	defer span.End()

	term := strings.TrimSpace(c.Query("searchTerm"))
	if term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "searchTerm is required"})
		return
	}

	results, err := h.searchService.Search(ctx, term)
	if err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
