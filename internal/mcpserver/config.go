package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/schemacase/internal/conffile"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Convention defaults, used when a tool call does not set them.
	ConfigFile   string
	Pluralize    bool
	UsesNextAuth bool

	// Format aligns migrated schemas unless a call sets no_format.
	Format bool

	// Store cache settings.
	CacheEnabled bool
	CacheMaxSize int

	// Change log pagination.
	ChangeLimit int
	MaxLimit    int

	// MaxInlineSize bounds inline schema and config content, in bytes.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SCHEMACASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ConfigFile:    envString("SCHEMACASE_CONFIG_FILE", conffile.DefaultPath),
		Pluralize:     envBool("SCHEMACASE_PLURALIZE", false),
		UsesNextAuth:  envBool("SCHEMACASE_USES_NEXT_AUTH", false),
		Format:        envBool("SCHEMACASE_FORMAT", true),
		CacheEnabled:  envBool("SCHEMACASE_CACHE_ENABLED", true),
		CacheMaxSize:  envInt("SCHEMACASE_CACHE_MAX_SIZE", 10),
		ChangeLimit:   envInt("SCHEMACASE_CHANGE_LIMIT", 100),
		MaxLimit:      envInt("SCHEMACASE_MAX_LIMIT", 1000),
		MaxInlineSize: int64(envInt("SCHEMACASE_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
