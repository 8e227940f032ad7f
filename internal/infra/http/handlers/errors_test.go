package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/angristan/todo-music-api/internal/app/services/catalog"
	"github.com/angristan/todo-music-api/internal/app/services/songs"
	"github.com/angristan/todo-music-api/internal/app/services/todos"
	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	"github.com/angristan/todo-music-api/internal/infra/http/handlers"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	upstream := infraerrors.NewUpstreamError("spotify", "search", errors.New("EOF"))

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{"empty search term", catalog.ErrEmptySearchTerm, http.StatusBadRequest, "search term is required"},
		{"invalid song", fmt.Errorf("%w: trackId is required", songs.ErrInvalidSong), http.StatusBadRequest, "invalid song"},
		{"invalid todo", fmt.Errorf("%w: name is required", todos.ErrInvalidTodo), http.StatusBadRequest, "invalid todo"},
		{"song not found", fmt.Errorf("%w: a", songs.ErrSongNotFound), http.StatusNotFound, "song not found"},
		{"todo not found", fmt.Errorf("x: %w", fmt.Errorf("%w: a", todos.ErrTodoNotFound)), http.StatusNotFound, "todo not found"},
		{"catalog client", fmt.Errorf("%w: %w", catalog.ErrCatalogClient, upstream), http.StatusBadGateway, "catalog client error"},
		{"upstream", fmt.Errorf("s.attachments.Delete: %w", infraerrors.NewUpstreamError("minio", "remove object", errors.New("denied"))), http.StatusBadGateway, "upstream service error"},
		{"malformed", infraerrors.NewMalformedResponseError("vault", "not a map"), http.StatusBadGateway, "upstream service error"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := handlers.Status(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMessage, message)
		})
	}
}
