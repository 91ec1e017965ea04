package convention

import (
	"strings"

	"github.com/erraggy/schemacase/caseerrors"
	"github.com/erraggy/schemacase/internal/naming"
)

// Supported casing tokens.
const (
	TokenPascal = "pascal"
	TokenCamel  = "camel"
	TokenSnake  = "snake"
)

// Inflection flavors accepted after a comma, e.g. "snake,plural".
const (
	FlavorPlural   = "plural"
	FlavorSingular = "singular"
)

var casings = map[string]func(string) string{
	TokenPascal: naming.ToPascalCase,
	TokenCamel:  naming.ToCamelCase,
	TokenSnake:  naming.ToSnakeCase,
}

// Case is a named identifier casing function.
type Case struct {
	// Token is the normalized source token, e.g. "snake" or "pascal,plural"
	Token string
	fn    func(string) string
}

// Apply converts s. A nil Case returns s unchanged.
func (c *Case) Apply(s string) string {
	if c == nil || c.fn == nil {
		return s
	}
	return c.fn(s)
}

// String returns the token.
func (c *Case) String() string {
	if c == nil {
		return ""
	}
	return c.Token
}

// ParseCase parses a casing token with an optional inflection flavor.
// Tokens are trimmed and case-folded, so "Snake , Plural" is accepted.
func ParseCase(token string) (*Case, error) {
	name, flavor, hasFlavor := strings.Cut(token, ",")
	name = naming.NormalizeToken(name)
	flavor = naming.NormalizeToken(flavor)

	base, ok := casings[name]
	if !ok {
		return nil, &caseerrors.CaseConventionError{Token: strings.TrimSpace(token)}
	}
	if !hasFlavor {
		return &Case{Token: name, fn: base}, nil
	}

	var fn func(string) string
	switch flavor {
	case FlavorPlural:
		fn = func(s string) string { return naming.ToPlural(base(s)) }
	case FlavorSingular:
		fn = func(s string) string { return naming.ToSingular(base(s)) }
	default:
		return nil, &caseerrors.CaseConventionError{Token: strings.TrimSpace(token)}
	}
	return &Case{Token: name + "," + flavor, fn: fn}, nil
}

func mustCase(token string) *Case {
	c, err := ParseCase(token)
	if err != nil {
		panic(err)
	}
	return c
}
