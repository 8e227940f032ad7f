package spotify

import (
	"context"
	"fmt"
	"sync"
	"time"

	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	"github.com/angristan/todo-music-api/internal/infra/metrics"
	"github.com/angristan/todo-music-api/internal/infra/repository/secrets"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

// StalenessThreshold is the fraction of a token's advertised lifetime after
// which it gets replaced.
const StalenessThreshold = 0.9

type SecretResolver interface {
	Get(ctx context.Context) (secrets.Secret, error)
}

// Grant is the result of a client-credentials exchange.
type Grant struct {
	AccessToken string
	ExpiresIn   time.Duration
}

type Exchanger interface {
	Exchange(ctx context.Context, clientID, clientSecret string) (Grant, error)
}

type CachedToken struct {
	Value    string
	IssuedAt time.Time
	TTL      time.Duration
}

// Stale reports whether the token must be refreshed at now. A token that was
// never issued is stale, and so is one whose issue time lies after now.
func (t CachedToken) Stale(now time.Time) bool {
	if t.IssuedAt.IsZero() {
		return true
	}

	elapsed := now.Sub(t.IssuedAt)
	if elapsed < 0 {
		return true
	}

	return elapsed > time.Duration(float64(t.TTL)*StalenessThreshold)
}

type TokenCacheConfig struct {
	ClientID    string
	SecretField string
}

type TokenCacheOption func(*TokenCache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TokenCacheOption {
	return func(c *TokenCache) {
		c.now = now
	}
}

// TokenCache memoizes a client-credentials access token and replaces it once
// StalenessThreshold of its lifetime has elapsed.
type TokenCache struct {
	tracer    trace.Tracer
	logger    logrus.FieldLogger
	secrets   SecretResolver
	exchanger Exchanger
	config    TokenCacheConfig
	now       func() time.Time

	refreshes singleflight.Group

	mu    sync.RWMutex
	token CachedToken
}

func NewTokenCache(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	resolver SecretResolver,
	exchanger Exchanger,
	config TokenCacheConfig,
	opts ...TokenCacheOption,
) *TokenCache {
	c := &TokenCache{
		tracer:    tracer,
		logger:    logger,
		secrets:   resolver,
		exchanger: exchanger,
		config:    config,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *TokenCache) EnsureValidToken(ctx context.Context) error {
	_, err := c.Token(ctx)
	return err
}

// Token returns the current token, refreshing it first when stale. Callers
// that find the token stale share a single refresh and stop waiting when
// their own context is done.
func (c *TokenCache) Token(ctx context.Context) (CachedToken, error) {
	ctx, span := c.tracer.Start(ctx, "TokenCache.Token")
	defer span.End()

	if token, ok := c.current(); ok {
		span.AddEvent("Token is still valid, no need to refresh", trace.WithAttributes(
			attribute.Float64("seconds_since_issue", c.now().Sub(token.IssuedAt).Seconds()),
		))
		return token, nil
	}

	// the refresh outlives a caller that gives up, its result serves the others
	refreshCtx := context.WithoutCancel(ctx)
	result := c.refreshes.DoChan("token", func() (interface{}, error) {
		// a refresh may have completed between the check above and this flight
		if token, ok := c.current(); ok {
			return token, nil
		}

		token, err := c.refresh(refreshCtx)
		metrics.TokenRefreshTotal.WithLabelValues(metrics.Result(err)).Inc()
		if err != nil {
			return CachedToken{}, err
		}

		c.mu.Lock()
		c.token = token
		c.mu.Unlock()

		return token, nil
	})

	select {
	case <-ctx.Done():
		span.RecordError(ctx.Err())
		return CachedToken{}, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			span.RecordError(res.Err)
			return CachedToken{}, res.Err
		}

		span.AddEvent("Token refreshed", trace.WithAttributes(attribute.Bool("shared", res.Shared)))
		return res.Val.(CachedToken), nil
	}
}

func (c *TokenCache) current() (CachedToken, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.token, !c.token.Stale(c.now())
}

func (c *TokenCache) refresh(ctx context.Context) (CachedToken, error) {
	c.logger.Info("Retrieving new access token for Spotify API")

	secret, err := c.secrets.Get(ctx)
	if err != nil {
		return CachedToken{}, fmt.Errorf("c.secrets.Get: %w", err)
	}

	clientSecret := secret[c.config.SecretField]
	if clientSecret == "" {
		return CachedToken{}, infraerrors.NewMalformedResponseError(
			"secrets",
			fmt.Sprintf("field %q is missing or empty", c.config.SecretField),
		)
	}

	issuedAt := c.now()
	grant, err := c.exchanger.Exchange(ctx, c.config.ClientID, clientSecret)
	if err != nil {
		return CachedToken{}, fmt.Errorf("c.exchanger.Exchange: %w", err)
	}

	c.logger.WithField("expires_in_seconds", grant.ExpiresIn.Seconds()).Info("Spotify access token refreshed")

	return CachedToken{
		Value:    grant.AccessToken,
		IssuedAt: issuedAt,
		TTL:      grant.ExpiresIn,
	}, nil
}
