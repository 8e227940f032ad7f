package todos

import (
	"go.opentelemetry.io/otel/trace"
)

type TodosHandler struct {
	tracer       trace.Tracer
	todosService TodosService
}

func New(
	tracer trace.Tracer,
	todosService TodosService,
) *TodosHandler {
	return &TodosHandler{
		tracer:       tracer,
		todosService: todosService,
	}
}
