// Package metrics provides Prometheus metrics for the API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "todo_music_api"

// Result labels for metrics.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// TokenRefreshTotal counts client-credentials exchanges.
	TokenRefreshTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "spotify",
			Name:      "token_refresh_total",
			Help:      "Total number of Spotify access token refreshes",
		},
		[]string{"result"},
	)

	// SecretFetchTotal counts reads against the secret store. A warm process
	// should only ever report one success.
	SecretFetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "secrets",
			Name:      "fetch_total",
			Help:      "Total number of secret store reads",
		},
		[]string{"result"},
	)

	// SearchCacheTotal counts search result cache lookups.
	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "search_cache_total",
			Help:      "Search result cache lookups by outcome",
		},
		[]string{"outcome"},
	)
)

// Register adds every collector to the given registerer.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		TokenRefreshTotal,
		SecretFetchTotal,
		SearchCacheTotal,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Result maps an error to a result label.
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
