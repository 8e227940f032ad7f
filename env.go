package main

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	Port string `env:"PORT" env-default:"1323"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFile   string `env:"LOG_FILE"`

	SpotifyClientID          string `env:"SPOTIFY_API_CLIENT_ID" env-required:"true"`
	SpotifyClientSecretID    string `env:"SPOTIFY_API_CLIENT_SECRET_ID" env-default:"spotify/client"`
	SpotifyClientSecretField string `env:"SPOTIFY_API_CLIENT_SECRET_FIELD" env-default:"client_secret"`
	SpotifyTokenURL          string `env:"SPOTIFY_TOKEN_URL"`
	// SpotifyClientSecret bypasses Vault when set.
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`

	VaultAddr  string `env:"VAULT_ADDR" env-default:"http://127.0.0.1:8200"`
	VaultToken string `env:"VAULT_TOKEN"`
	VaultMount string `env:"VAULT_MOUNT" env-default:"secret"`

	RedisURL       string        `env:"REDIS_URL" env-required:"true"`
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL" env-default:"24h"`

	DatabaseDSN string `env:"DATABASE_DSN" env-required:"true"`

	MinioEndpoint       string        `env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	MinioAccessKey      string        `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey      string        `env:"MINIO_SECRET_KEY"`
	MinioRegion         string        `env:"MINIO_REGION" env-default:"us-east-1"`
	MinioUseSSL         bool          `env:"MINIO_USE_SSL" env-default:"false"`
	MinioPublicURL      string        `env:"MINIO_PUBLIC_URL"`
	ImagesBucket        string        `env:"IMAGES_BUCKET" env-default:"images"`
	SignedURLExpiration time.Duration `env:"SIGNED_URL_EXPIRATION" env-default:"300s"`

	JWTSecret string `env:"JWT_SECRET" env-required:"true"`

	OTLPEndpoint     string  `env:"OTLP_ENDPOINT" env-default:"tempo:4318"`
	TraceSampleRatio float64 `env:"TRACE_SAMPLE_RATIO" env-default:"1"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}
