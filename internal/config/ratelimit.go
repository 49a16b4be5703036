package config

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig controls the per-IP token bucket applied to the login
// endpoint.  Login is the only route worth limiting here: it is the one
// place an attacker can grind passwords, and bcrypt makes each attempt
// expensive for us too.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadRateLimitConfig reads environment variables to build a
// RateLimitConfig, with defaults tuned for interactive login traffic.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       envInt("RATE_LIMIT_CAPACITY", 10),
		RefillTokens:   1,
		RefillInterval: parseDur(getenv("RATE_LIMIT_REFILL_INTERVAL", "6s")),
		TTL:            parseDur(getenv("RATE_LIMIT_TTL", "10m")),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
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

// envInt reads an optional integer variable.  A set value is honored even
// when it is zero; only an unset variable or one that fails to parse falls
// back to the default, so an explicit "0" is clamped by the caller rather
// than silently replaced.
func envInt(key string, def int) int {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
