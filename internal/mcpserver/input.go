package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/erraggy/schemacase/convention"
	"github.com/erraggy/schemacase/internal/conffile"
)

// schemaInput represents the two ways a Prisma schema can be provided to a
// tool. Exactly one of File or Content must be set.
type schemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Prisma schema file on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline Prisma schema content"`
}

// read returns the schema text.
func (s schemaInput) read() (string, error) {
	if (s.File == "") == (s.Content == "") {
		return "", errors.New("exactly one of file or content must be provided")
	}
	if s.Content != "" {
		if err := checkInlineSize("schema", s.Content); err != nil {
			return "", err
		}
		return s.Content, nil
	}
	data, err := os.ReadFile(s.File)
	if err != nil {
		return "", fmt.Errorf("failed to read schema: %w", err)
	}
	return string(data), nil
}

// conventionInput selects the convention store of a tool call. Case fields
// override the root rule of the config; unset flags fall back to the config
// and then to the SCHEMACASE_* defaults.
type conventionInput struct {
	ConfigFile    string `json:"config_file,omitempty"    jsonschema:"Path to a YAML or JSON convention config (default SCHEMACASE_CONFIG_FILE or .prisma-case-format)"`
	ConfigContent string `json:"config_content,omitempty" jsonschema:"Inline YAML or JSON convention config; takes precedence over config_file"`
	TableCase     string `json:"table_case,omitempty"     jsonschema:"Casing of model and view names: pascal, camel or snake, optionally followed by ,plural or ,singular"`
	FieldCase     string `json:"field_case,omitempty"     jsonschema:"Casing of field names"`
	EnumCase      string `json:"enum_case,omitempty"      jsonschema:"Casing of enum names (defaults to the table casing)"`
	MapTableCase  string `json:"map_table_case,omitempty" jsonschema:"Casing of @@map values of models and views"`
	MapFieldCase  string `json:"map_field_case,omitempty" jsonschema:"Casing of @map values of fields"`
	MapEnumCase   string `json:"map_enum_case,omitempty"  jsonschema:"Casing of @@map values of enums (defaults to the map table casing)"`
	Pluralize     *bool  `json:"pluralize,omitempty"      jsonschema:"Pluralize the names of list fields"`
	UsesNextAuth  *bool  `json:"uses_next_auth,omitempty" jsonschema:"Keep the models of the NextAuth.js Prisma adapter in their required casing"`
}

func (c conventionInput) options() []convention.Option {
	opts := []convention.Option{
		convention.WithCase(convention.AxisTable, c.TableCase),
		convention.WithCase(convention.AxisField, c.FieldCase),
		convention.WithCase(convention.AxisEnum, c.EnumCase),
		convention.WithCase(convention.AxisMapTable, c.MapTableCase),
		convention.WithCase(convention.AxisMapField, c.MapFieldCase),
		convention.WithCase(convention.AxisMapEnum, c.MapEnumCase),
	}
	switch {
	case c.Pluralize != nil:
		opts = append(opts, convention.WithPluralize(*c.Pluralize))
	case cfg.Pluralize:
		opts = append(opts, convention.WithPluralize(true))
	}
	switch {
	case c.UsesNextAuth != nil:
		opts = append(opts, convention.WithNextAuth(*c.UsesNextAuth))
	case cfg.UsesNextAuth:
		opts = append(opts, convention.WithNextAuth(true))
	}
	return opts
}

// store builds the convention store, reusing a cached one when the config
// source and overrides are unchanged.
func (c conventionInput) store() (*convention.Store, error) {
	var key string
	if cfg.CacheEnabled {
		key = c.cacheKey()
		if cached := storeCache.get(key); cached != nil {
			return cached, nil
		}
	}

	file, err := c.file()
	if err != nil {
		return nil, err
	}
	store, err := convention.New(file, c.options()...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		storeCache.put(key, store)
	}
	return store, nil
}

func (c conventionInput) file() (*convention.File, error) {
	if c.ConfigContent != "" {
		if err := checkInlineSize("config", c.ConfigContent); err != nil {
			return nil, err
		}
		return conffile.Parse([]byte(c.ConfigContent), conffile.FormatUnknown)
	}
	path := c.ConfigFile
	if path == "" {
		path = cfg.ConfigFile
	}
	return conffile.Load(path)
}

// cacheKey identifies the config source and every override. File sources
// are keyed by absolute path and modification time; a config file that
// cannot be stat'ed is not cached.
func (c conventionInput) cacheKey() string {
	var source string
	switch {
	case c.ConfigContent != "":
		h := sha256.Sum256([]byte(c.ConfigContent))
		source = "content:" + hex.EncodeToString(h[:])
	default:
		path := c.ConfigFile
		if path == "" {
			path = cfg.ConfigFile
		}
		absPath, err := filepath.Abs(path)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		source = fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%s|%s|%v|%v", source,
		c.TableCase, c.FieldCase, c.EnumCase, c.MapTableCase, c.MapFieldCase, c.MapEnumCase,
		boolKey(c.Pluralize), boolKey(c.UsesNextAuth), cfg.Pluralize, cfg.UsesNextAuth)
}

func boolKey(b *bool) string {
	if b == nil {
		return "-"
	}
	return fmt.Sprint(*b)
}

func checkInlineSize(what, content string) error {
	if int64(len(content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline %s size %d bytes exceeds maximum %d bytes; use a file instead, or set SCHEMACASE_MAX_INLINE_SIZE to increase",
			what, len(content), cfg.MaxInlineSize)
	}
	return nil
}

// storeCacheStore is a session-scoped LRU of built convention stores.
type storeCacheStore struct {
	mu      sync.Mutex
	entries map[string]*storeEntry
	maxSize int
	clock   uint64
}

type storeEntry struct {
	store   *convention.Store
	touched uint64
}

var storeCache = &storeCacheStore{
	entries: make(map[string]*storeEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached store or nil.
func (c *storeCacheStore) get(key string) *convention.Store {
	if key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.clock++
		e.touched = c.clock
		return e.store
	}
	return nil
}

// put stores s, evicting the least recently used entry if at capacity.
func (c *storeCacheStore) put(key string, s *convention.Store) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest uint64
		for k, e := range c.entries {
			if oldestKey == "" || e.touched < oldest {
				oldestKey, oldest = k, e.touched
			}
		}
		delete(c.entries, oldestKey)
	}
	c.clock++
	c.entries[key] = &storeEntry{store: s, touched: c.clock}
}

// reset clears all cached entries. Used in tests.
func (c *storeCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*storeEntry)
}

// size returns the number of cached entries.
func (c *storeCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
