package spotify

import (
	"context"
	"net/http"
	"strconv"
	"time"

	infraerrors "github.com/angristan/todo-music-api/internal/infra/errors"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const spotifyService = "spotify"

// ClientCredentialsExchanger performs the OAuth2 client-credentials grant.
type ClientCredentialsExchanger struct {
	tokenURL   string
	httpClient *http.Client
}

// NewClientCredentialsExchanger uses the Spotify accounts endpoint when
// tokenURL is empty.
func NewClientCredentialsExchanger(tokenURL string, httpClient *http.Client) *ClientCredentialsExchanger {
	if tokenURL == "" {
		tokenURL = spotifyauth.TokenURL
	}

	return &ClientCredentialsExchanger{
		tokenURL:   tokenURL,
		httpClient: httpClient,
	}
}

func (e *ClientCredentialsExchanger) Exchange(ctx context.Context, clientID, clientSecret string) (Grant, error) {
	config := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     e.tokenURL,
	}

	if e.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, e.httpClient)
	}

	token, err := config.Token(ctx)
	if err != nil {
		return Grant{}, infraerrors.NewUpstreamError(spotifyService, "client credentials grant", err)
	}

	expiresIn := advertisedLifetime(token)
	if token.AccessToken == "" || expiresIn <= 0 {
		return Grant{}, infraerrors.NewMalformedResponseError(spotifyService, "token response without access_token or expires_in")
	}

	return Grant{
		AccessToken: token.AccessToken,
		ExpiresIn:   expiresIn,
	}, nil
}

// advertisedLifetime reads expires_in from the raw token response. JSON
// bodies decode it as float64, form-encoded ones as int64 or string.
func advertisedLifetime(token *oauth2.Token) time.Duration {
	switch v := token.Extra("expires_in").(type) {
	case float64:
		return time.Duration(v * float64(time.Second))
	case int64:
		return time.Duration(v) * time.Second
	case string:
		if seconds, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(seconds * float64(time.Second))
		}
	}

	if !token.Expiry.IsZero() {
		return time.Until(token.Expiry)
	}

	return 0
}
