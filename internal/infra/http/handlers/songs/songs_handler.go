package songs

import (
	"net/http"

	"github.com/angristan/todo-music-api/internal/infra/http/handlers"
	"github.com/angristan/todo-music-api/internal/infra/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type SongsHandler struct {
	tracer       trace.Tracer
	songsService SongsService
}

func New(
	tracer trace.Tracer,
	songsService SongsService,
) *SongsHandler {
	return &SongsHandler{
		tracer:       tracer,
		songsService: songsService,
	}
}

type addSongRequest struct {
	TrackID string `json:"trackId"`
}

func (h *SongsHandler) List(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SongsHandler.List")
	defer span.End()

	trackIDs, err := h.songsService.ListTrackIDs(ctx, middleware.UserID(c))
	if err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": trackIDs})
}

func (h *SongsHandler) Add(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SongsHandler.Add")
	defer span.End()

	var request addSongRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	song, err := h.songsService.Add(ctx, middleware.UserID(c), request.TrackID)
	if err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": song})
}

func (h *SongsHandler) Delete(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "SongsHandler.Delete")
	defer span.End()

	if err := h.songsService.Delete(ctx, middleware.UserID(c), c.Param("trackId")); err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
