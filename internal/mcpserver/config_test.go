package mcpserver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/schemacase/internal/conffile"
)

// clearSchemacaseEnv clears all SCHEMACASE_* env vars to isolate tests from the ambient environment.
func clearSchemacaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SCHEMACASE_CONFIG_FILE", "SCHEMACASE_PLURALIZE",
		"SCHEMACASE_USES_NEXT_AUTH", "SCHEMACASE_FORMAT",
		"SCHEMACASE_CACHE_ENABLED", "SCHEMACASE_CACHE_MAX_SIZE",
		"SCHEMACASE_CHANGE_LIMIT", "SCHEMACASE_MAX_LIMIT",
		"SCHEMACASE_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearSchemacaseEnv(t)

	c := loadConfig()

	assert.Equal(t, conffile.DefaultPath, c.ConfigFile)
	assert.False(t, c.Pluralize)
	assert.False(t, c.UsesNextAuth)
	assert.True(t, c.Format)
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 100, c.ChangeLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearSchemacaseEnv(t)
	t.Setenv("SCHEMACASE_CONFIG_FILE", "conventions.yaml")
	t.Setenv("SCHEMACASE_PLURALIZE", "true")
	t.Setenv("SCHEMACASE_USES_NEXT_AUTH", "1")
	t.Setenv("SCHEMACASE_FORMAT", "false")
	t.Setenv("SCHEMACASE_CACHE_ENABLED", "false")
	t.Setenv("SCHEMACASE_CACHE_MAX_SIZE", "50")
	t.Setenv("SCHEMACASE_CHANGE_LIMIT", "25")
	t.Setenv("SCHEMACASE_MAX_LIMIT", "500")
	t.Setenv("SCHEMACASE_MAX_INLINE_SIZE", "5242880")

	c := loadConfig()

	assert.Equal(t, "conventions.yaml", c.ConfigFile)
	assert.True(t, c.Pluralize)
	assert.True(t, c.UsesNextAuth)
	assert.False(t, c.Format)
	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 25, c.ChangeLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearSchemacaseEnv(t)
	t.Setenv("SCHEMACASE_CACHE_MAX_SIZE", "banana")
	t.Setenv("SCHEMACASE_CACHE_ENABLED", "maybe")
	t.Setenv("SCHEMACASE_PLURALIZE", "sometimes")
	t.Setenv("SCHEMACASE_CHANGE_LIMIT", "-5")
	t.Setenv("SCHEMACASE_MAX_INLINE_SIZE", "abc")
	t.Setenv("SCHEMACASE_MAX_LIMIT", "0")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.False(t, c.Pluralize)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 100, c.ChangeLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearSchemacaseEnv(t)
	t.Setenv("SCHEMACASE_CHANGE_LIMIT", "42")

	c := loadConfig()

	assert.Equal(t, 42, c.ChangeLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.True(t, c.Format)
	assert.True(t, c.CacheEnabled)
}
