// Package metrics defines the Prometheus collectors shared across the
// provider clients and the REST server.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// UpstreamRequests counts outbound API calls by provider and HTTP status.
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfi_upstream_requests_total",
			Help: "Outbound requests to upstream data APIs.",
		},
		[]string{"provider", "status"},
	)

	// CacheHits counts responses served from the TTL cache, by provider.
	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfi_cache_hits_total",
			Help: "Upstream responses served from the in-memory cache.",
		},
		[]string{"provider"},
	)

	// CacheMisses counts cache-enabled requests that had to go upstream.
	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toolfi_cache_misses_total",
			Help: "Cache-enabled requests that reached the upstream API.",
		},
		[]string{"provider"},
	)
)

// MustRegister registers all collectors with the default registry.
// Call it once at startup; a second call panics on duplicate registration.
func MustRegister() {
	prometheus.MustRegister(UpstreamRequests, CacheHits, CacheMisses)
}
