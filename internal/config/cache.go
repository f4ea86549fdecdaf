package config

import (
    "strings"
    "time"
)

// CacheConfig controls the response cache middleware that fronts the public
// catalog reads.  When Enabled is false or no Redis client could be built,
// caching is disabled entirely.  Methods lists the HTTP methods eligible for
// caching, TTL bounds the lifetime of an entry, and Prefix namespaces the
// keys so other Redis users on the same instance are not disturbed.
type CacheConfig struct {
    Enabled      bool
    Methods      map[string]bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from the environment with defaults
// tuned for the catalog: only GETs are cached, for thirty seconds.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        Methods:      parseMethods(envStr("CACHE_METHODS", "GET")),
        TTL:          envDur("CACHE_TTL", 30*time.Second),
        Prefix:       envStr("CACHE_PREFIX", "catalog"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
}

func parseMethods(s string) map[string]bool {
    m := map[string]bool{}
    for _, p := range strings.Split(s, ",") {
        p = strings.TrimSpace(strings.ToUpper(p))
        if p != "" {
            m[p] = true
        }
    }
    return m
}
