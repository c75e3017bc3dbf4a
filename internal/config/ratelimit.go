package config

import "time"

// AuthRateConfig is the token-bucket configuration applied to the
// login and registration form submissions.  The bucket is keyed by
// client IP, so one abusive address cannot lock everyone out.
type AuthRateConfig struct {
	Enabled        bool
	Capacity       int           // burst size per IP
	RefillInterval time.Duration // one token refilled per interval
	TTL            time.Duration // idle bucket expiry in Redis
	Prefix         string
}

// LoadAuthRateConfig reads environment variables to build an
// AuthRateConfig with conservative defaults: a burst of 10 attempts,
// one new attempt every 3 seconds.
func LoadAuthRateConfig() AuthRateConfig {
	cfg := AuthRateConfig{
		Enabled:        getenv("AUTH_RATE_ENABLED", "true") == "true",
		Capacity:       atoi(getenv("AUTH_RATE_CAPACITY", "10")),
		RefillInterval: parseDur(getenv("AUTH_RATE_REFILL_INTERVAL", "3s")),
		TTL:            parseDur(getenv("AUTH_RATE_TTL", "10m")),
		Prefix:         getenv("AUTH_RATE_PREFIX", "authrl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
