package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angristan/todo-music-api/internal/app/services/catalog"
	"github.com/angristan/todo-music-api/internal/app/services/songs"
	"github.com/angristan/todo-music-api/internal/app/services/todos"
	server "github.com/angristan/todo-music-api/internal/infra/http"
	cataloghandler "github.com/angristan/todo-music-api/internal/infra/http/handlers/catalog"
	songshandler "github.com/angristan/todo-music-api/internal/infra/http/handlers/songs"
	todoshandler "github.com/angristan/todo-music-api/internal/infra/http/handlers/todos"
	"github.com/angristan/todo-music-api/internal/infra/metrics"
	"github.com/angristan/todo-music-api/internal/infra/repository/cache/redis"
	"github.com/angristan/todo-music-api/internal/infra/repository/database"
	"github.com/angristan/todo-music-api/internal/infra/repository/secrets"
	"github.com/angristan/todo-music-api/internal/infra/repository/spotify"
	"github.com/angristan/todo-music-api/internal/infra/repository/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.StandardLogger()

	err := LoadEnv()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load environment variables")
	}

	config := GetEnv()
	configureLogger(logger, config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracerProvider, err := setupTracing(ctx, tracingConfig{
		Endpoint:    config.OTLPEndpoint,
		SampleRatio: config.TraceSampleRatio,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to set up tracing")
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Failed to shutdown tracer provider")
		}
	}()

	tracer := tracerProvider.Tracer(serviceName)

	if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
		logger.WithError(err).Fatal("Failed to register metrics")
	}

	secretStore, err := newSecretStore(config)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create secret store")
	}

	tokenCache := spotify.NewTokenCache(
		tracer,
		logger.WithField("component", "token_cache"),
		secrets.NewResolver(tracer, secretStore, config.SpotifyClientSecretID),
		spotify.NewClientCredentialsExchanger(config.SpotifyTokenURL, nil),
		spotify.TokenCacheConfig{
			ClientID:    config.SpotifyClientID,
			SecretField: config.SpotifyClientSecretField,
		},
	)
	spotifyClient := spotify.New(tracer, tokenCache, spotify.ClientConfig{})

	redisClient, err := redis.NewClient(ctx, config.RedisURL)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisClient.Close()

	db, err := database.Open(config.DatabaseDSN, logger.WithField("component", "gorm"))
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to the database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.WithError(err).Error("Failed to close the database")
		}
	}()

	attachments, err := storage.NewAttachmentStore(tracer, storage.Config{
		Endpoint:      config.MinioEndpoint,
		AccessKey:     config.MinioAccessKey,
		SecretKey:     config.MinioSecretKey,
		Region:        config.MinioRegion,
		UseSSL:        config.MinioUseSSL,
		Bucket:        config.ImagesBucket,
		PublicURL:     config.MinioPublicURL,
		URLExpiration: config.SignedURLExpiration,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to create attachment store")
	}
	if err := attachments.EnsureBucket(ctx); err != nil {
		logger.WithError(err).Fatal("Failed to prepare attachment bucket")
	}

	searchService := catalog.New(
		tracer,
		spotifyClient,
		redis.NewCache(redisClient),
		config.SearchCacheTTL,
	)
	songsService := songs.New(tracer, database.NewSongRepository(db))
	todosService := todos.New(tracer, database.NewTodoRepository(db), attachments)

	srv, err := server.New(
		server.NewConfig(config.Port, []byte(config.JWTSecret), false),
		prometheus.DefaultGatherer,
		cataloghandler.New(tracer, searchService),
		songshandler.New(tracer, songsService),
		todoshandler.New(tracer, todosService),
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create HTTP server")
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Failed to shutdown HTTP server")
	}
}

// newSecretStore reads the client secret from Vault unless a static one is
// configured.
func newSecretStore(config *Env) (secrets.Store, error) {
	if config.SpotifyClientSecret != "" {
		return secrets.StaticStore{
			config.SpotifyClientSecretID: secrets.Secret{
				config.SpotifyClientSecretField: config.SpotifyClientSecret,
			},
		}, nil
	}

	return secrets.NewVaultStore(secrets.VaultConfig{
		Address: config.VaultAddr,
		Token:   config.VaultToken,
		Mount:   config.VaultMount,
		Timeout: 10 * time.Second,
	})
}
