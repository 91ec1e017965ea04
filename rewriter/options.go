package rewriter

import (
	"fmt"
	"os"

	"github.com/erraggy/schemacase/convention"
	"github.com/erraggy/schemacase/internal/options"
)

// Option configures MigrateWithOptions.
type Option func(*migrateConfig) error

type migrateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	source   *string

	store  *convention.Store
	logger Logger
}

// MigrateWithOptions rewrites a schema using functional options.
//
// Example:
//
//	result, err := rewriter.MigrateWithOptions(
//	    rewriter.WithFilePath("prisma/schema.prisma"),
//	    rewriter.WithStore(store),
//	)
func MigrateWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("rewriter: invalid options: %w", err)
	}

	r := &Rewriter{Store: cfg.store, Logger: cfg.logger}
	if cfg.filePath != nil {
		data, err := os.ReadFile(*cfg.filePath)
		if err != nil {
			return nil, fmt.Errorf("rewriter: failed to read schema: %w", err)
		}
		return r.Migrate(string(data))
	}
	return r.Migrate(*cfg.source)
}

func applyOptions(opts ...Option) (*migrateConfig, error) {
	cfg := &migrateConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireOneSource(
		options.Source{Option: "WithFilePath", Set: cfg.filePath != nil},
		options.Source{Option: "WithSource", Set: cfg.source != nil},
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath reads the schema from path.
func WithFilePath(path string) Option {
	return func(cfg *migrateConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithSource uses text as the schema.
func WithSource(text string) Option {
	return func(cfg *migrateConfig) error {
		cfg.source = &text
		return nil
	}
}

// WithStore sets the convention store. Without it the defaults apply.
func WithStore(store *convention.Store) Option {
	return func(cfg *migrateConfig) error {
		cfg.store = store
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(cfg *migrateConfig) error {
		cfg.logger = logger
		return nil
	}
}
