package todos

import (
	"net/http"

	apptodos "github.com/angristan/todo-music-api/internal/app/services/todos"
	"github.com/angristan/todo-music-api/internal/infra/http/handlers"
	"github.com/angristan/todo-music-api/internal/infra/http/middleware"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

func (h *TodosHandler) List(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "TodosHandler.List")
	defer span.End()

	items, err := h.todosService.List(ctx, middleware.UserID(c))
	if err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *TodosHandler) Create(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "TodosHandler.Create")
	defer span.End()

	var request apptodos.CreateTodoRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.todosService.Create(ctx, middleware.UserID(c), request)
	if err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (h *TodosHandler) Update(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "TodosHandler.Update")
	defer span.End()

	todoID := c.Param("todoId")
	span.SetAttributes(attribute.String("todo_id", todoID))

	var update apptodos.TodoUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.todosService.Update(ctx, middleware.UserID(c), todoID, update); err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodosHandler) Delete(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "TodosHandler.Delete")
	defer span.End()

	todoID := c.Param("todoId")
	span.SetAttributes(attribute.String("todo_id", todoID))

	if err := h.todosService.Delete(ctx, middleware.UserID(c), todoID); err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodosHandler) AttachmentUploadURL(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "TodosHandler.AttachmentUploadURL")
	defer span.End()

	todoID := c.Param("todoId")
	span.SetAttributes(attribute.String("todo_id", todoID))

	uploadURL, err := h.todosService.AttachmentUploadURL(ctx, middleware.UserID(c), todoID)
	if err != nil {
		span.RecordError(err)
		handlers.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"uploadUrl": uploadURL})
}
