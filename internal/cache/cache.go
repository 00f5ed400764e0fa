// Package cache provides the process-wide TTL cache shared by the provider
// clients, keyed by a hash of the request identity.
package cache

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"
)

// Cache is a TTL-keyed store for raw upstream response bodies.
// It is safe for concurrent use; tool invocations run on separate goroutines.
type Cache struct {
	store *gocache.Cache
}

// New creates a Cache. Entries expire lazily after their TTL; a cleanup
// interval of zero disables the background sweep entirely.
func New(defaultTTL, cleanupInterval time.Duration) *Cache {
	return &Cache{store: gocache.New(defaultTTL, cleanupInterval)}
}

// Get returns the cached body for key, or ok=false when the key is absent
// or its entry has expired.
func (c *Cache) Get(key string) ([]byte, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

// Set stores body under key, unconditionally overwriting any previous entry.
func (c *Cache) Set(key string, body []byte, ttl time.Duration) {
	c.store.Set(key, body, ttl)
}

// Flush drops every entry.
func (c *Cache) Flush() {
	c.store.Flush()
}

// Key derives a deterministic cache key from a request URL and its query
// parameters. The parameters are folded in sorted order, so two requests
// that differ only in map iteration order collide on the same key.
func Key(rawURL string, params map[string]string) string {
	h := xxhash.New()
	_, _ = h.WriteString(rawURL)
	_, _ = h.WriteString("?")
	_, _ = h.WriteString(CanonicalQuery(params))
	return strconv.FormatUint(h.Sum64(), 16)
}

// CanonicalQuery encodes params as a query string with keys in sorted order.
func CanonicalQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}
