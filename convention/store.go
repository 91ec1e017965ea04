package convention

import (
	"regexp"
	"sort"

	"github.com/erraggy/schemacase/internal/naming"
)

var (
	defaultTable = mustCase(TokenPascal)
	defaultField = mustCase(TokenCamel)
	defaultEnum  = mustCase(TokenPascal)
)

// candidateKeys generate the spellings of a scope segment that are looked
// up among child keys, in order.
var candidateKeys = []func(string) string{
	func(s string) string { return s },
	naming.ToPascalCase,
	naming.ToSnakeCase,
	naming.ToCamelCase,
}

// Store is a node of the convention scope tree. The root holds the global
// rule; its children are keyed by entity name and theirs by field name or
// field-name pattern. A Store is read-only once built and safe for
// concurrent use.
type Store struct {
	rule     Rule
	children map[string]*Store
	// keys holds the child keys in pattern-matching order
	keys     []string
	patterns map[string]*regexp.Regexp
}

func newStore(rule Rule, children map[string]*Store) *Store {
	s := &Store{rule: rule, children: children}
	s.index()
	return s
}

// index orders child keys for pattern matching, longest first, and compiles
// each as an anchored regexp. Keys that are not valid patterns only match by
// equality.
func (s *Store) index() {
	s.keys = make([]string, 0, len(s.children))
	s.patterns = make(map[string]*regexp.Regexp, len(s.children))
	for key := range s.children {
		s.keys = append(s.keys, key)
		if re, err := regexp.Compile(`^(?:` + key + `)$`); err == nil {
			s.patterns[key] = re
		}
	}
	sort.Slice(s.keys, func(i, j int) bool {
		if len(s.keys[i]) != len(s.keys[j]) {
			return len(s.keys[i]) > len(s.keys[j])
		}
		return s.keys[i] < s.keys[j]
	})
}

// Rule returns the rule configured at this node.
func (s *Store) Rule() Rule {
	return s.rule
}

// Child returns the child matching segment, or nil. Exact keys are tried
// first for each candidate spelling (raw, pascal, snake, camel), then every
// key as a pattern against the same spellings.
func (s *Store) Child(segment string) *Store {
	if len(s.children) == 0 {
		return nil
	}
	for _, candidate := range candidateKeys {
		if child, ok := s.children[candidate(segment)]; ok {
			return child
		}
	}
	for _, key := range s.keys {
		re := s.patterns[key]
		if re == nil {
			continue
		}
		for _, candidate := range candidateKeys {
			if re.MatchString(candidate(segment)) {
				return s.children[key]
			}
		}
	}
	return nil
}

// path returns the nodes matched by scope, starting with s. Resolution stops
// at the first segment without a matching child.
func (s *Store) path(scope []string) []*Store {
	nodes := []*Store{s}
	cur := s
	for _, segment := range scope {
		next := cur.Child(segment)
		if next == nil {
			break
		}
		nodes = append(nodes, next)
		cur = next
	}
	return nodes
}

// resolve returns the deepest value set along scope.
func resolve[T any](s *Store, scope []string, get func(*Rule) *T) *T {
	nodes := s.path(scope)
	for i := len(nodes) - 1; i >= 0; i-- {
		if v := get(&nodes[i].rule); v != nil {
			return v
		}
	}
	return nil
}

func (s *Store) lookup(axis Axis, scope []string) *Case {
	return resolve(s, scope, func(r *Rule) *Case { return r.Get(axis) })
}

// Table returns the casing of model and view identifiers. Defaults to pascal.
func (s *Store) Table(scope ...string) *Case {
	if c := s.lookup(AxisTable, scope); c != nil {
		return c
	}
	return defaultTable
}

// Field returns the casing of field identifiers. Defaults to camel.
func (s *Store) Field(scope ...string) *Case {
	if c := s.lookup(AxisField, scope); c != nil {
		return c
	}
	return defaultField
}

// Enum returns the casing of enum identifiers, falling back to the table
// casing and then to pascal.
func (s *Store) Enum(scope ...string) *Case {
	if c := s.lookup(AxisEnum, scope); c != nil {
		return c
	}
	if c := s.lookup(AxisTable, scope); c != nil {
		return c
	}
	return defaultEnum
}

// MapTable returns the casing used to derive @@map values of models and
// views, or nil when unset.
func (s *Store) MapTable(scope ...string) *Case {
	return s.lookup(AxisMapTable, scope)
}

// MapField returns the casing used to derive @map values, or nil when unset.
func (s *Store) MapField(scope ...string) *Case {
	return s.lookup(AxisMapField, scope)
}

// MapEnum returns the casing used to derive @@map values of enums, falling
// back to MapTable. Nil when neither is set.
func (s *Store) MapEnum(scope ...string) *Case {
	if c := s.lookup(AxisMapEnum, scope); c != nil {
		return c
	}
	return s.lookup(AxisMapTable, scope)
}

// IsPlural reports whether array fields in scope get pluralized names.
func (s *Store) IsPlural(scope ...string) bool {
	v := resolve(s, scope, func(r *Rule) *bool { return r.Pluralize })
	return v != nil && *v
}

// IsDisabled reports whether rewriting is switched off for scope.
func (s *Store) IsDisabled(scope ...string) bool {
	v := resolve(s, scope, func(r *Rule) *bool { return r.Disable })
	return v != nil && *v
}

// Resolution is the effective convention of a scope.
type Resolution struct {
	Scope     []string `json:"scope"`
	Table     string   `json:"table"`
	Field     string   `json:"field"`
	Enum      string   `json:"enum"`
	MapTable  string   `json:"map_table,omitempty"`
	MapField  string   `json:"map_field,omitempty"`
	MapEnum   string   `json:"map_enum,omitempty"`
	Pluralize bool     `json:"pluralize"`
	Disable   bool     `json:"disable"`
}

// Describe resolves every axis and flag for scope.
func (s *Store) Describe(scope ...string) Resolution {
	return Resolution{
		Scope:     append([]string(nil), scope...),
		Table:     s.Table(scope...).String(),
		Field:     s.Field(scope...).String(),
		Enum:      s.Enum(scope...).String(),
		MapTable:  s.MapTable(scope...).String(),
		MapField:  s.MapField(scope...).String(),
		MapEnum:   s.MapEnum(scope...).String(),
		Pluralize: s.IsPlural(scope...),
		Disable:   s.IsDisabled(scope...),
	}
}
