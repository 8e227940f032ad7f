package spotify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/angristan/todo-music-api/internal/app/services/catalog"
	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	spotifyLib "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

type TokenSource interface {
	Token(ctx context.Context) (CachedToken, error)
}

type ClientConfig struct {
	// BaseURL overrides the Web API root. It must end with a slash.
	BaseURL    string
	HTTPClient *http.Client
}

// Client searches the Spotify catalog with a cached client-credentials token.
type Client struct {
	tracer trace.Tracer
	tokens TokenSource
	config ClientConfig
}

func New(tracer trace.Tracer, tokens TokenSource, config ClientConfig) *Client {
	return &Client{
		tracer: tracer,
		tokens: tokens,
		config: config,
	}
}

func (client *Client) Search(ctx context.Context, term string) ([]catalog.SearchResult, error) {
	ctx, span := client.tracer.Start(ctx, "SpotifyClient.Search")
	defer span.End()

	span.SetAttributes(attribute.String("spotify-query", term))

	token, err := client.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("client.tokens.Token: %w", err)
	}

	results, err := client.apiClient(ctx, token).Search(ctx, term, spotifyLib.SearchTypeTrack)
	if err != nil {
		return nil, infraerrors.NewUpstreamError(spotifyService, "search", err)
	}
	if results == nil || results.Tracks == nil {
		return nil, infraerrors.NewMalformedResponseError(spotifyService, "search response without tracks")
	}

	out := make([]catalog.SearchResult, 0, len(results.Tracks.Tracks))
	for _, track := range results.Tracks.Tracks {
		out = append(out, catalog.NewSearchResult(toTrack(track)))
	}

	span.SetAttributes(attribute.Int("results", len(out)))

	return out, nil
}

// apiClient builds a Web API client bound to the given bearer token.
func (client *Client) apiClient(ctx context.Context, token CachedToken) *spotifyLib.Client {
	if client.config.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, client.config.HTTPClient)
	}

	httpClient := spotifyauth.New().Client(ctx, &oauth2.Token{
		AccessToken: token.Value,
		TokenType:   "Bearer",
	})

	var opts []spotifyLib.ClientOption
	if client.config.BaseURL != "" {
		opts = append(opts, spotifyLib.WithBaseURL(client.config.BaseURL))
	}

	return spotifyLib.New(httpClient, opts...)
}

func toTrack(track spotifyLib.FullTrack) catalog.Track {
	artists := make([]catalog.Artist, 0, len(track.Artists))
	for _, artist := range track.Artists {
		artists = append(artists, catalog.Artist{Name: artist.Name})
	}

	images := make([]catalog.Image, 0, len(track.Album.Images))
	for _, image := range track.Album.Images {
		images = append(images, catalog.Image{URL: image.URL, Height: int(image.Height)})
	}

	return catalog.Track{
		ID:         string(track.ID),
		Name:       track.Name,
		URI:        string(track.URI),
		Artists:    artists,
		DurationMs: int(track.Duration),
		Images:     images,
	}
}
