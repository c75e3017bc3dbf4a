package config

import "time"

// PageCacheConfig controls the Redis cache for anonymous catalog
// pages.  Only GET responses are cached, and only for visitors
// without a session cookie; authenticated pages carry the username in
// the header and must never be shared.
type PageCacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadPageCacheConfig reads environment variables to build a
// PageCacheConfig.  Defaults are used when variables are not set.
func LoadPageCacheConfig() PageCacheConfig {
	return PageCacheConfig{
		Enabled:      getenv("PAGE_CACHE_ENABLED", "true") == "true",
		TTL:          parseDur(getenv("PAGE_CACHE_TTL", "60s")),
		Prefix:       getenv("PAGE_CACHE_PREFIX", "page"),
		MaxBodyBytes: atoi(getenv("PAGE_CACHE_MAX_BODY_BYTES", "262144")),
	}
}
