// Package client implements the HTTP clients for the four upstream data
// providers, sharing one transport base with header injection, cache
// read-through, and a typed error taxonomy.
package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"toolfi/internal/cache"
	"toolfi/internal/pkg/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const userAgent = "toolfi/0.1.0"

// baseClient is the shared request/response machinery used by every provider
// client. Each provider owns its own instance (and fasthttp connection pool);
// the cache is the only shared state.
type baseClient struct {
	provider string
	http     *fasthttp.Client
	baseURL  string
	timeout  time.Duration
	cacheTTL time.Duration
	cache    *cache.Cache
	// auth injects the provider-specific credential header, when configured.
	auth   func(h *fasthttp.RequestHeader)
	group  singleflight.Group
	logger *zap.Logger
}

func newBaseClient(provider, baseURL string, timeout, cacheTTL time.Duration, store *cache.Cache, logger *zap.Logger) *baseClient {
	return &baseClient{
		provider: provider,
		http:     &fasthttp.Client{},
		baseURL:  strings.TrimRight(baseURL, "/"),
		timeout:  timeout,
		cacheTTL: cacheTTL,
		cache:    store,
		logger:   logger,
	}
}

// getJSON performs a GET against path and returns the raw response body.
// With useCache, a fresh cached body short-circuits the request, and a
// successful response is stored under the request's key before returning.
// Concurrent cache-missing calls for the same key are coalesced into one
// upstream request.
func (c *baseClient) getJSON(ctx context.Context, path string, params map[string]string, useCache bool) ([]byte, error) {
	requestURL := c.baseURL + path
	fullURL := requestURL
	if q := cache.CanonicalQuery(params); q != "" {
		fullURL += "?" + q
	}

	key := cache.Key(requestURL, params)
	if useCache {
		if body, ok := c.cache.Get(key); ok {
			metrics.CacheHits.WithLabelValues(c.provider).Inc()
			c.logger.Debug("Cache hit", zap.String("url", fullURL))
			return body, nil
		}
		metrics.CacheMisses.WithLabelValues(c.provider).Inc()
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		body, err := c.do(ctx, fullURL)
		if err != nil {
			return nil, err
		}
		if useCache {
			c.cache.Set(key, body, c.cacheTTL)
		}
		return body, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (c *baseClient) do(ctx context.Context, requestURL string) ([]byte, error) {
	c.logger.Debug("Requesting upstream API", zap.String("url", requestURL))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderUserAgent, userAgent)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.auth != nil {
		c.auth(&req.Header)
	}

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(c.provider, "error").Inc()
		if errors.Is(err, fasthttp.ErrTimeout) || errors.Is(err, fasthttp.ErrDialTimeout) {
			c.logger.Warn("Upstream request timed out", zap.String("url", requestURL))
			return nil, fmt.Errorf("%w: %s", ErrTimeout, requestURL)
		}
		c.logger.Error("Failed to execute upstream request", zap.String("url", requestURL), zap.Error(err))
		return nil, fmt.Errorf("request to %s failed: %w", requestURL, err)
	}

	status := resp.StatusCode()
	metrics.UpstreamRequests.WithLabelValues(c.provider, strconv.Itoa(status)).Inc()

	// The response buffer is reused once released, so the body must be copied out.
	body := append([]byte(nil), resp.Body()...)

	if status == fasthttp.StatusTooManyRequests {
		c.logger.Warn("Upstream rate limit hit", zap.String("url", requestURL))
		return nil, ErrRateLimited
	}
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		c.logger.Error("Upstream request failed",
			zap.String("url", requestURL),
			zap.Int("statusCode", status),
			zap.ByteString("responseBody", body))
		return nil, &UpstreamError{Status: status, Body: string(body)}
	}
	return body, nil
}

// Close releases the client's idle connections. Safe to call more than once.
func (c *baseClient) Close() {
	c.http.CloseIdleConnections()
}

// normalizeAddress lowercases and trims a contract address before it is used
// in request parameters and response lookups.
func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
