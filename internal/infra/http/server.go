package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/angristan/todo-music-api/internal/infra/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "todo-music-api"

type Server struct {
	*http.Server
}

func New(
	cfg Config,
	gatherer prometheus.Gatherer,
	ch CatalogHandler,
	sh SongsHandler,
	th TodosHandler,
) (*Server, error) {
	engine := gin.New()

	httpPort, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid port %q: %w", cfg.Port, err)
	}

	if !cfg.disableMiddleware {
		engine.Use(gin.Recovery())
		engine.Use(gin.Logger())
		engine.Use(otelgin.Middleware(serviceName))
	}
	engine.Use(middleware.CORS())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := engine.Group("/", middleware.Authenticate(cfg.JWTSecret))

	api.GET("/searchSong", ch.Search)

	api.GET("/songs", sh.List)
	api.POST("/songs", sh.Add)
	api.DELETE("/songs/:trackId", sh.Delete)

	api.GET("/todos", th.List)
	api.POST("/todos", th.Create)
	api.PATCH("/todos/:todoId", th.Update)
	api.DELETE("/todos/:todoId", th.Delete)
	api.POST("/todos/:todoId/attachment", th.AttachmentUploadURL)

	internalServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", httpPort),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{internalServer}, nil
}
