package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/text/language"
)

// serverConfig holds the MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Locale drives upper/lower case mapping in the casing rules.
	Locale language.Tag

	// MaxTextSize caps the size in bytes of a document sent to a tool.
	MaxTextSize int
}

var cfg = loadConfig()

// loadConfig reads configuration from BEMCASE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		Locale:      envLocale("BEMCASE_LOCALE", language.Und),
		MaxTextSize: envInt("BEMCASE_MAX_TEXT_SIZE", 1<<20),
	}
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

func envLocale(key string, fallback language.Tag) language.Tag {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	tag, err := language.Parse(v)
	if err != nil {
		slog.Warn("invalid locale env var, using default", "key", key, "value", v, "error", err)
		return fallback
	}
	return tag
}
