package convention

import (
	"strings"

	"github.com/erraggy/schemacase/caseerrors"
	"github.com/erraggy/schemacase/internal/naming"
)

// Axis names one of the six convention slots of a Rule.
type Axis string

const (
	// AxisTable cases model and view identifiers
	AxisTable Axis = "table"
	// AxisField cases field identifiers
	AxisField Axis = "field"
	// AxisEnum cases enum identifiers
	AxisEnum Axis = "enum"
	// AxisMapTable derives the @@map value of models and views
	AxisMapTable Axis = "mapTable"
	// AxisMapField derives the @map value of fields
	AxisMapField Axis = "mapField"
	// AxisMapEnum derives the @@map value of enums
	AxisMapEnum Axis = "mapEnum"
)

// Axes lists every axis in rule-string order.
var Axes = []Axis{AxisTable, AxisField, AxisEnum, AxisMapTable, AxisMapField, AxisMapEnum}

// DisableRule is the rule string that switches rewriting off for a scope.
const DisableRule = "disable"

// ParseAxis resolves a rule key. Keys are matched case-insensitively.
func ParseAxis(key string) (Axis, error) {
	folded := naming.NormalizeToken(key)
	for _, a := range Axes {
		if naming.NormalizeToken(string(a)) == folded {
			return a, nil
		}
	}
	return "", &caseerrors.OptionError{Option: strings.TrimSpace(key), Valid: axisNames()}
}

func axisNames() []string {
	names := make([]string, len(Axes))
	for i, a := range Axes {
		names[i] = string(a)
	}
	return names
}

// Rule is the convention configured at one scope. Nil members are unset and
// defer to an enclosing scope.
type Rule struct {
	Table    *Case
	Field    *Case
	Enum     *Case
	MapTable *Case
	MapField *Case
	MapEnum  *Case

	Pluralize *bool
	Disable   *bool
}

// Get returns the case configured for axis, or nil.
func (r *Rule) Get(axis Axis) *Case {
	switch axis {
	case AxisTable:
		return r.Table
	case AxisField:
		return r.Field
	case AxisEnum:
		return r.Enum
	case AxisMapTable:
		return r.MapTable
	case AxisMapField:
		return r.MapField
	case AxisMapEnum:
		return r.MapEnum
	}
	return nil
}

// Set configures axis. Unknown axes are ignored.
func (r *Rule) Set(axis Axis, c *Case) {
	switch axis {
	case AxisTable:
		r.Table = c
	case AxisField:
		r.Field = c
	case AxisEnum:
		r.Enum = c
	case AxisMapTable:
		r.MapTable = c
	case AxisMapField:
		r.MapField = c
	case AxisMapEnum:
		r.MapEnum = c
	}
}

// IsZero reports whether nothing is configured.
func (r *Rule) IsZero() bool {
	for _, a := range Axes {
		if r.Get(a) != nil {
			return false
		}
	}
	return r.Pluralize == nil && r.Disable == nil
}

// String renders the rule in rule-string syntax. Pluralize has no rule-string
// form and is omitted.
func (r *Rule) String() string {
	if r.Disable != nil && *r.Disable {
		return DisableRule
	}
	var parts []string
	for _, a := range Axes {
		if c := r.Get(a); c != nil {
			parts = append(parts, string(a)+"="+c.Token)
		}
	}
	return strings.Join(parts, "; ")
}

// ParseRule parses a rule string such as
//
//	table=pascal; field=camel; mapTable=snake,plural
//
// The literal string "disable" yields a rule with only Disable set. Empty
// pairs are skipped, so a trailing ";" is fine.
func ParseRule(s string) (Rule, error) {
	var r Rule
	if naming.NormalizeToken(s) == DisableRule {
		disabled := true
		r.Disable = &disabled
		return r, nil
	}

	for _, pair := range strings.Split(s, ";") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return Rule{}, &caseerrors.OptionError{Option: strings.TrimSpace(pair), Valid: axisNames()}
		}
		axis, err := ParseAxis(key)
		if err != nil {
			return Rule{}, err
		}
		c, err := ParseCase(value)
		if err != nil {
			return Rule{}, err
		}
		r.Set(axis, c)
	}
	return r, nil
}
