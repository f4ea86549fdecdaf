package config

import "time"

// RateLimitConfig controls the fixed-window limiter applied to the auth
// endpoints.  Limit is the number of requests allowed per Window for a
// single client key.  Prefix namespaces the counters in Redis.
type RateLimitConfig struct {
    Enabled bool
    Limit   int
    Window  time.Duration
    Prefix  string
}

// LoadRateLimitConfig reads the limiter settings from the environment.  The
// defaults allow 20 auth attempts per minute per client, which is generous
// for humans and tight enough to slow down credential stuffing.
func LoadRateLimitConfig() RateLimitConfig {
    cfg := RateLimitConfig{
        Enabled: envBool("RATE_LIMIT_ENABLED", true),
        Limit:   envInt("RATE_LIMIT_LIMIT", 20),
        Window:  envDur("RATE_LIMIT_WINDOW", time.Minute),
        Prefix:  envStr("RATE_LIMIT_PREFIX", "rl"),
    }
    if cfg.Limit < 1 {
        cfg.Limit = 1
    }
    if cfg.Window <= 0 {
        cfg.Window = time.Minute
    }
    return cfg
}
