package songs_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appsongs "github.com/angristan/todo-music-api/internal/app/services/songs"
	handler "github.com/angristan/todo-music-api/internal/infra/http/handlers/songs"
	"github.com/angristan/todo-music-api/internal/infra/http/handlers/songs/mocks"
	"github.com/angristan/todo-music-api/internal/infra/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.opentelemetry.io/otel"
)

const userID = "auth0|123"

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", "application/json")
	ctx.Set(middleware.UserIDKey, userID)

	return ctx, recorder
}

func TestSongsHandler_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, recorder := newContext(http.MethodGet, "/songs", "")

		mockService := &mocks.MockSongsService{}
		mockService.On("ListTrackIDs", mock.Anything, userID).Return([]string{"a", "b"}, nil).Once()

		handler.New(otel.Tracer("test"), mockService).List(ctx)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `{"items": ["a", "b"]}`, recorder.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		ctx, recorder := newContext(http.MethodGet, "/songs", "")

		mockService := &mocks.MockSongsService{}
		mockService.On("ListTrackIDs", mock.Anything, userID).Return(nil, assert.AnError).Once()

		handler.New(otel.Tracer("test"), mockService).List(ctx)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.JSONEq(t, `{"error": "internal server error"}`, recorder.Body.String())
	})
}

func TestSongsHandler_Add(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectCall     bool
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "created",
			body:           `{"trackId": "a"}`,
			expectCall:     true,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"item": {"userId": "auth0|123", "trackId": "a", "createdAt": "2024-03-01T09:00:00Z"}}`,
		},
		{
			name:           "invalid song",
			body:           `{"trackId": ""}`,
			serviceErr:     fmt.Errorf("%w: trackId is required", appsongs.ErrInvalidSong),
			expectCall:     true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid song"}`,
		},
		{
			name:           "malformed body",
			body:           `{"trackId":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, recorder := newContext(http.MethodPost, "/songs", tt.body)

			mockService := &mocks.MockSongsService{}
			t.Cleanup(func() {
				mockService.AssertExpectations(t)
			})

			if tt.expectCall {
				song := appsongs.Song{UserID: userID, TrackID: "a", CreatedAt: createdAt}
				if tt.serviceErr != nil {
					song = appsongs.Song{}
				}
				mockService.On("Add", mock.Anything, userID, mock.Anything).Return(song, tt.serviceErr).Once()
			}

			handler.New(otel.Tracer("test"), mockService).Add(ctx)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			assert.JSONEq(t, tt.expectedBody, recorder.Body.String())
		})
	}
}

func TestSongsHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", fmt.Errorf("%w: a", appsongs.ErrSongNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, recorder := newContext(http.MethodDelete, "/songs/a", "")
			ctx.Params = gin.Params{{Key: "trackId", Value: "a"}}

			mockService := &mocks.MockSongsService{}
			mockService.On("Delete", mock.Anything, userID, "a").Return(tt.serviceErr).Once()

			handler.New(otel.Tracer("test"), mockService).Delete(ctx)
			ctx.Writer.WriteHeaderNow()

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			mockService.AssertExpectations(t)
		})
	}
}
