package convention

import (
	"fmt"

	"github.com/erraggy/schemacase/caseerrors"
	"github.com/erraggy/schemacase/internal/maputil"
)

// WildcardField is the child key a string-valued "field" override is stored
// under. It matches every field name.
const WildcardField = ".*"

// File is the plain configuration structure a Store is built from.
//
// Override values are either a rule string or an object:
//
//	override:
//	  LegacyTable: disable
//	  Account:
//	    default: "table=pascal; mapTable=snake"
//	    field:
//	      refresh_token: "field=snake; mapField=snake"
//	  AuditLog:
//	    field: "field=snake"
type File struct {
	Default      string         `yaml:"default,omitempty" json:"default,omitempty"`
	UsesNextAuth bool           `yaml:"uses_next_auth,omitempty" json:"uses_next_auth,omitempty"`
	Override     map[string]any `yaml:"override,omitempty" json:"override,omitempty"`
}

// Option configures Store construction.
type Option func(*storeConfig) error

type storeConfig struct {
	cases     map[Axis]*Case
	pluralize *bool
	nextAuth  *bool
}

// WithCase sets axis at the root scope from a casing token, replacing any
// value from the file's default rule. An empty token is ignored.
func WithCase(axis Axis, token string) Option {
	return func(cfg *storeConfig) error {
		if token == "" {
			return nil
		}
		a, err := ParseAxis(string(axis))
		if err != nil {
			return err
		}
		c, err := ParseCase(token)
		if err != nil {
			return err
		}
		cfg.cases[a] = c
		return nil
	}
}

// WithPluralize sets the root pluralize flag.
func WithPluralize(pluralize bool) Option {
	return func(cfg *storeConfig) error {
		cfg.pluralize = &pluralize
		return nil
	}
}

// WithNextAuth overrides the file's uses_next_auth flag.
func WithNextAuth(enabled bool) Option {
	return func(cfg *storeConfig) error {
		cfg.nextAuth = &enabled
		return nil
	}
}

// New builds a Store from a configuration file. A nil file yields the
// defaults (pascal tables and enums, camel fields) adjusted by opts.
func New(file *File, opts ...Option) (*Store, error) {
	cfg := &storeConfig{cases: make(map[Axis]*Case)}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("convention: invalid options: %w", err)
		}
	}

	var f File
	if file != nil {
		f = *file
	}
	if cfg.nextAuth != nil {
		f.UsesNextAuth = *cfg.nextAuth
	}
	overrides := f.Override
	if f.UsesNextAuth {
		overrides = withNextAuth(overrides)
	}

	var root Rule
	if f.Default != "" {
		var err error
		if root, err = ParseRule(f.Default); err != nil {
			return nil, fmt.Errorf("convention: default: %w", err)
		}
	}
	for axis, c := range cfg.cases {
		root.Set(axis, c)
	}
	if cfg.pluralize != nil {
		root.Pluralize = cfg.pluralize
	}

	children := make(map[string]*Store, len(overrides))
	for _, name := range maputil.SortedKeys(overrides) {
		child, err := overrideStore(name, overrides[name])
		if err != nil {
			return nil, fmt.Errorf("convention: override %q: %w", name, err)
		}
		children[name] = child
	}
	return newStore(root, children), nil
}

// FromRule returns a single-scope Store: every entity and field resolves to r.
func FromRule(r Rule) *Store {
	return newStore(r, nil)
}

// FromRuleString parses s and returns a single-scope Store.
func FromRuleString(s string) (*Store, error) {
	r, err := ParseRule(s)
	if err != nil {
		return nil, fmt.Errorf("convention: %w", err)
	}
	return FromRule(r), nil
}

func overrideStore(entity string, v any) (*Store, error) {
	switch val := v.(type) {
	case string:
		r, err := ParseRule(val)
		if err != nil {
			return nil, err
		}
		return newStore(r, nil), nil
	case map[string]any:
		return objectStore(entity, val)
	case map[any]any:
		m, err := stringKeys(entity, val)
		if err != nil {
			return nil, err
		}
		return objectStore(entity, m)
	}
	return nil, &caseerrors.OverrideShapeError{Entity: entity, Kind: kindOf(v)}
}

func objectStore(entity string, obj map[string]any) (*Store, error) {
	var rule Rule
	children := make(map[string]*Store)
	for _, key := range maputil.SortedKeys(obj) {
		v := obj[key]
		switch key {
		case "default":
			s, ok := v.(string)
			if !ok {
				return nil, &caseerrors.OverrideShapeError{Entity: entity + ".default", Kind: kindOf(v)}
			}
			r, err := ParseRule(s)
			if err != nil {
				return nil, err
			}
			rule = r
		case "field":
			if err := fieldStores(entity, v, children); err != nil {
				return nil, err
			}
		default:
			return nil, &caseerrors.OptionError{Option: key, Valid: []string{"default", "field"}}
		}
	}
	return newStore(rule, children), nil
}

func fieldStores(entity string, v any, into map[string]*Store) error {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		r, err := ParseRule(val)
		if err != nil {
			return err
		}
		into[WildcardField] = newStore(r, nil)
		return nil
	case map[any]any:
		m, err := stringKeys(entity+".field", val)
		if err != nil {
			return err
		}
		return fieldStores(entity, m, into)
	case map[string]any:
		for _, field := range maputil.SortedKeys(val) {
			fv := val[field]
			s, ok := fv.(string)
			if !ok {
				return &caseerrors.OverrideShapeError{Entity: entity + "." + field, Kind: kindOf(fv)}
			}
			r, err := ParseRule(s)
			if err != nil {
				return fmt.Errorf("field %q: %w", field, err)
			}
			into[field] = newStore(r, nil)
		}
		return nil
	}
	return &caseerrors.OverrideShapeError{Entity: entity + ".field", Kind: kindOf(v)}
}

func stringKeys(entity string, m map[any]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		s, ok := k.(string)
		if !ok {
			return nil, &caseerrors.OverrideShapeError{Entity: entity, Kind: "an object with " + kindOf(k) + " keys"}
		}
		out[s] = v
	}
	return out, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []any:
		return "array"
	case string:
		return "string"
	}
	return fmt.Sprintf("%T", v)
}

const (
	nextAuthCamel = "field=camel; mapField=camel"
	nextAuthSnake = "field=snake; mapField=snake"
	nextAuthModel = "table=pascal; mapTable=pascal; field=camel; mapField=camel"
)

// withNextAuth returns a copy of overrides with the fixed NextAuth.js adapter
// models added. Those entries replace any user override of the same name.
func withNextAuth(overrides map[string]any) map[string]any {
	out := make(map[string]any, len(overrides)+4)
	for k, v := range overrides {
		out[k] = v
	}
	out["Account"] = map[string]any{
		"default": "table=pascal; mapTable=pascal;",
		"field": map[string]any{
			"id":                nextAuthCamel,
			"userId":            nextAuthCamel,
			"type":              nextAuthCamel,
			"provider":          nextAuthCamel,
			"providerAccountId": nextAuthCamel,
			"refresh_token":     nextAuthSnake,
			"access_token":      nextAuthSnake,
			"expires_at":        nextAuthSnake,
			"token_type":        nextAuthSnake,
			"scope":             nextAuthSnake,
			"id_token":          nextAuthSnake,
			"session_state":     nextAuthSnake,
			"user":              nextAuthSnake,
		},
	}
	out["Session"] = map[string]any{"default": nextAuthModel}
	out["User"] = map[string]any{"default": nextAuthModel}
	out["VerificationToken"] = map[string]any{"default": nextAuthModel}
	return out
}
