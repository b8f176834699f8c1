package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/oas2ir/parser"
)

// serverConfig holds the MCP server defaults, read once from OAS2IR_MCP_*
// environment variables.
type serverConfig struct {
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// MaxInputSize limits both file and inline documents, in bytes.
	MaxInputSize int64

	// IncludeViolations is the convert tool default when the request
	// does not say.
	IncludeViolations bool
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("OAS2IR_MCP_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("OAS2IR_MCP_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("OAS2IR_MCP_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("OAS2IR_MCP_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("OAS2IR_MCP_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInputSize:       envInt64("OAS2IR_MCP_MAX_INPUT_SIZE", parser.DefaultMaxFileSize),
		IncludeViolations:  envBool("OAS2IR_MCP_INCLUDE_VIOLATIONS", true),
	}
}

func envBool(key string, fallback bool) bool {
	return envValue(key, fallback, strconv.ParseBool, nil)
}

func envInt(key string, fallback int) int {
	return envValue(key, fallback, strconv.Atoi, positive[int])
}

func envInt64(key string, fallback int64) int64 {
	parse := func(v string) (int64, error) { return strconv.ParseInt(v, 10, 64) }
	return envValue(key, fallback, parse, positive[int64])
}

func envDuration(key string, fallback time.Duration) time.Duration {
	return envValue(key, fallback, time.ParseDuration, positive[time.Duration])
}

func positive[T int | int64 | time.Duration](v T) bool { return v > 0 }

// envValue parses the variable named key. An unset variable yields fallback
// silently; one that fails parse or valid yields fallback with a warning.
func envValue[T any](key string, fallback T, parse func(string) (T, error), valid func(T) bool) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil || (valid != nil && !valid(v)) {
		slog.Warn("invalid env var, using default", "key", key, "value", raw, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}
