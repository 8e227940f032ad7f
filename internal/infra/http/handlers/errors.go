// Package handlers holds the response helpers shared by the HTTP handlers.
package handlers

import (
	"errors"
	"net/http"

	"github.com/angristan/todo-music-api/internal/app/services/catalog"
	"github.com/angristan/todo-music-api/internal/app/services/songs"
	"github.com/angristan/todo-music-api/internal/app/services/todos"
	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	"github.com/gin-gonic/gin"
)

var sentinelStatuses = []struct {
	err    error
	status int
}{
	{catalog.ErrEmptySearchTerm, http.StatusBadRequest},
	{songs.ErrInvalidSong, http.StatusBadRequest},
	{todos.ErrInvalidTodo, http.StatusBadRequest},
	{songs.ErrSongNotFound, http.StatusNotFound},
	{todos.ErrTodoNotFound, http.StatusNotFound},
	{catalog.ErrCatalogClient, http.StatusBadGateway},
}

// Status maps a service error to the HTTP status and message sent back.
// Unknown errors never leak their text.
func Status(err error) (int, string) {
	for _, s := range sentinelStatuses {
		if errors.Is(err, s.err) {
			return s.status, s.err.Error()
		}
	}

	if infraerrors.IsUpstreamError(err) || infraerrors.IsMalformedResponseError(err) {
		return http.StatusBadGateway, "upstream service error"
	}

	return http.StatusInternalServerError, "internal server error"
}

func AbortWithError(c *gin.Context, err error) {
	status, message := Status(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
