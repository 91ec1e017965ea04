package schema

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headerRe    = regexp.MustCompile(`^(\s*)(model|view|enum)(\s+)(\w+)(\s*\{.*)$`)
	fieldRe     = regexp.MustCompile(`^(\s*)(\w+)(\s+)(\w+(?:\([^)]*\))?)([\[\]?]*)(\s.*)?$`)
	inlineMapRe = regexp.MustCompile(`\s+@map\(\s*(?:name:\s*)?"([^"]*)"\s*\)`)
	blockMapRe  = regexp.MustCompile(`@@map\(\s*(?:name:\s*)?"([^"]*)"\s*\)`)
	typeArgsRe  = regexp.MustCompile(`\(.*\)`)
)

// primitives are the scalar type names that never reference another block.
var primitives = map[string]bool{
	"String":      true,
	"Boolean":     true,
	"Int":         true,
	"BigInt":      true,
	"Float":       true,
	"Decimal":     true,
	"DateTime":    true,
	"Json":        true,
	"Bytes":       true,
	"Unsupported": true,
}

// IsPrimitive reports whether a field type token names a scalar type.
// Array and optional markers and parenthesized arguments such as
// Unsupported("circle") are ignored.
func IsPrimitive(fieldType string) bool {
	return primitives[baseType(fieldType)]
}

func baseType(fieldType string) string {
	t := strings.Replace(fieldType, "[]", "", 1)
	t = strings.Replace(t, "?", "", 1)
	t = typeArgsRe.ReplaceAllString(t, "")
	return strings.TrimSpace(t)
}

// Header is a parsed model, view or enum declaration line.
type Header struct {
	Indent  string
	Keyword string
	Sep     string
	Name    string
	// Tail is everything from the opening brace onward, including any
	// leading whitespace.
	Tail string
}

// ParseHeader parses a block declaration line such as "model User {".
func ParseHeader(line string) (Header, bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return Header{}, false
	}
	return Header{Indent: m[1], Keyword: m[2], Sep: m[3], Name: m[4], Tail: m[5]}, true
}

// Kind returns the block kind introduced by the header.
func (h Header) Kind() Kind {
	return Kind(h.Keyword)
}

// String reassembles the header line.
func (h Header) String() string {
	return h.Indent + h.Keyword + h.Sep + h.Name + h.Tail
}

// Field is a parsed field declaration line. Concatenating the parts in order
// reproduces the source line exactly.
type Field struct {
	Indent string
	Name   string
	Sep    string
	// Type is the type token including parenthesized arguments.
	Type string
	// Modifiers holds the array and optional markers, e.g. "[]" or "?".
	Modifiers string
	// Rest is the trailing attribute and comment text. When non-empty it
	// starts with whitespace.
	Rest string
}

// ParseField parses a field declaration line. Lines that are not fields
// (attributes, comments, blank lines, braces) return false.
func ParseField(line string) (Field, bool) {
	m := fieldRe.FindStringSubmatch(line)
	if m == nil {
		return Field{}, false
	}
	return Field{
		Indent:    m[1],
		Name:      m[2],
		Sep:       m[3],
		Type:      m[4],
		Modifiers: m[5],
		Rest:      m[6],
	}, true
}

// String reassembles the field line.
func (f Field) String() string {
	return f.Indent + f.Name + f.Sep + f.Type + f.Modifiers + f.Rest
}

// IsArray reports whether the field is a list type.
func (f Field) IsArray() bool {
	return strings.HasPrefix(f.Modifiers, "[]")
}

// IsNullable reports whether the field is optional.
func (f Field) IsNullable() bool {
	return strings.Contains(f.Modifiers, "?")
}

// BaseType returns the type token without parenthesized arguments.
func (f Field) BaseType() string {
	return baseType(f.Type)
}

// attributes returns Rest up to, but not including, a trailing // comment.
// Slashes inside quoted arguments do not start a comment.
func (f Field) attributes() string {
	quoted := false
	for i := 0; i < len(f.Rest); i++ {
		switch c := f.Rest[i]; {
		case c == '\\' && quoted:
			i++
		case c == '"':
			quoted = !quoted
		case c == '/' && !quoted && strings.HasPrefix(f.Rest[i:], "//"):
			return f.Rest[:i]
		}
	}
	return f.Rest
}

// HasRelation reports whether the field carries a @relation attribute.
// Mentions inside the trailing comment do not count.
func (f Field) HasRelation() bool {
	return strings.Contains(f.attributes(), "@relation")
}

// MapName returns the value of an inline @map attribute.
func (f Field) MapName() (string, bool) {
	m := inlineMapRe.FindStringSubmatch(f.attributes())
	if m == nil {
		return "", false
	}
	return m[1], true
}

// WithoutMap returns f with its inline @map attribute, and the whitespace
// before it, removed.
func (f Field) WithoutMap() Field {
	if loc := inlineMapRe.FindStringIndex(f.attributes()); loc != nil {
		f.Rest = f.Rest[:loc[0]] + f.Rest[loc[1]:]
	}
	return f
}

// WithMapName returns f with its inline @map set to name. An existing
// attribute keeps its position; otherwise one is added right after the type.
func (f Field) WithMapName(name string) Field {
	m := inlineMapRe.FindStringSubmatchIndex(f.attributes())
	if m == nil {
		f.Rest = " " + MapAttribute(name) + f.Rest
		return f
	}
	f.Rest = f.Rest[:m[2]] + name + f.Rest[m[3]:]
	return f
}

// MapAttribute renders an inline storage-name attribute.
func MapAttribute(name string) string {
	return fmt.Sprintf("@map(%q)", name)
}

// BlockMapName returns the value of a @@map attribute on line.
func BlockMapName(line string) (string, bool) {
	m := blockMapRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ReplaceBlockMapName rewrites the value of the @@map attribute on line,
// leaving the rest of the line untouched.
func ReplaceBlockMapName(line, name string) string {
	loc := blockMapRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + fmt.Sprintf("@@map(%q)", name) + line[loc[1]:]
}

// RemoveBlockMap strips the @@map attribute, and the whitespace before it,
// from line.
func RemoveBlockMap(line string) string {
	loc := blockMapRe.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return strings.TrimRight(line[:loc[0]], " \t") + line[loc[1]:]
}

// BlockMapLine renders a standalone @@map line for insertion after a header.
func BlockMapLine(name string) string {
	return fmt.Sprintf("  @@map(%q)", name)
}
