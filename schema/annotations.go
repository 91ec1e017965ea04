package schema

import (
	"regexp"
	"strings"
)

var (
	relationCueRe  = regexp.MustCompile(`\b(fields|references)\s*:\s*\[`)
	blockAttrRe    = regexp.MustCompile(`@@(unique|id|index)\(`)
	simpleListRe   = regexp.MustCompile(`^\s*\[([\w\s,]+)\]`)
	identListRe    = regexp.MustCompile(`^\s*\w+(?:\s*,\s*\w+)*\s*$`)
	identifierRe   = regexp.MustCompile(`^\w+$`)
	cueRes         = map[Cue]*regexp.Regexp{
		CueFields:     regexp.MustCompile(`\bfields\s*:\s*\[`),
		CueReferences: regexp.MustCompile(`\breferences\s*:\s*\[`),
	}
)

const relationMarker = "@relation("

// Cue selects which bracketed list of an attribute an identifier was found in.
type Cue string

const (
	// CueDefault is the first bracketed list of the attribute arguments.
	CueDefault Cue = ""
	// CueFields is the list introduced by "fields:".
	CueFields Cue = "fields"
	// CueReferences is the list introduced by "references:".
	CueReferences Cue = "references"
)

// RewriteRelation converts every identifier in the fields: and references:
// lists of the @relation attribute on line. The lists may appear in either
// order. Lists are rejoined with ", "; every other character of the line is
// kept. Lines without @relation are returned unchanged.
func RewriteRelation(line string, fields, references func(string) string) string {
	idx := strings.Index(line, relationMarker)
	if idx < 0 {
		return line
	}
	open := idx + len(relationMarker) - 1
	closing := matchClose(line, open, '(', ')')
	if closing < 0 {
		return line
	}

	args := line[open+1 : closing]
	matches := relationCueRe.FindAllStringSubmatchIndex(args, -1)
	// Splice from the back so earlier offsets stay valid.
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		start := m[1]
		end := matchClose(args, start-1, '[', ']')
		if end < 0 {
			continue
		}
		conv := fields
		if args[m[2]:m[3]] == string(CueReferences) {
			conv = references
		}
		list := args[start:end]
		if !identListRe.MatchString(list) {
			continue
		}
		args = args[:start] + convertList(list, conv) + args[end:]
	}
	return line[:open+1] + args + line[closing:]
}

// RewriteBlockAttribute converts the field identifiers of every @@unique,
// @@id and @@index attribute on line.
//
// A plain bracketed list such as @@index([a_b, c]) is split, converted and
// rejoined with ", ". The structured form, e.g.
//
//	@@index(fields: [title(ops: raw("gin_trgm_ops")), author_id(sort: Desc)], type: Gin)
//
// is rewritten in place: identifiers outside parenthesized modifiers are
// converted and everything else, including order and spacing, is kept.
func RewriteBlockAttribute(line string, conv func(string) string) string {
	matches := blockAttrRe.FindAllStringIndex(line, -1)
	for i := len(matches) - 1; i >= 0; i-- {
		open := matches[i][1] - 1
		closing := matchClose(line, open, '(', ')')
		if closing < 0 {
			continue
		}
		args := line[open+1 : closing]
		line = line[:open+1] + rewriteAttributeArgs(args, conv) + line[closing:]
	}
	return line
}

func rewriteAttributeArgs(args string, conv func(string) string) string {
	if loc := simpleListRe.FindStringSubmatchIndex(args); loc != nil {
		return args[:loc[2]] + convertList(args[loc[2]:loc[3]], conv) + args[loc[3]:]
	}

	names := AttributeFieldNames(args)
	if len(names) == 0 {
		return args
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	regions := listRegions(args)
	for i := len(regions) - 1; i >= 0; i-- {
		r := regions[i]
		args = args[:r[0]] + rewriteTopLevel(args[r[0]:r[1]], known, conv) + args[r[1]:]
	}
	return args
}

// AttributeFieldNames extracts the field identifiers referenced by attribute
// arguments. Three strategies are unioned, keeping first-seen order: the
// first bracketed list, the list cued by "fields:" and the list cued by
// "references:". Parenthesized modifiers are stripped before splitting.
func AttributeFieldNames(args string) []string {
	var (
		names []string
		seen  = make(map[string]bool)
	)
	for _, cue := range []Cue{CueDefault, CueFields, CueReferences} {
		for _, name := range fieldNames(args, cue) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

func fieldNames(args string, cue Cue) []string {
	r, ok := cuedRegion(args, cue)
	if !ok {
		return nil
	}
	var names []string
	for _, part := range strings.Split(stripModifiers(args[r[0]:r[1]]), ",") {
		part = strings.TrimSpace(part)
		if identifierRe.MatchString(part) {
			names = append(names, part)
		}
	}
	return names
}

// cuedRegion returns the [start, end) offsets of a list's contents, without
// the brackets.
func cuedRegion(args string, cue Cue) ([2]int, bool) {
	var open int
	if cue == CueDefault {
		open = strings.IndexByte(args, '[')
	} else {
		loc := cueRes[cue].FindStringIndex(args)
		if loc == nil {
			return [2]int{}, false
		}
		open = loc[1] - 1
	}
	if open < 0 {
		return [2]int{}, false
	}
	end := matchClose(args, open, '[', ']')
	if end < 0 {
		return [2]int{}, false
	}
	return [2]int{open + 1, end}, true
}

// listRegions returns the distinct list regions of args in ascending order.
func listRegions(args string) [][2]int {
	var regions [][2]int
	seen := make(map[int]bool)
	for _, cue := range []Cue{CueDefault, CueFields, CueReferences} {
		r, ok := cuedRegion(args, cue)
		if !ok || seen[r[0]] {
			continue
		}
		seen[r[0]] = true
		regions = append(regions, r)
	}
	for i := 1; i < len(regions); i++ {
		for j := i; j > 0 && regions[j][0] < regions[j-1][0]; j-- {
			regions[j], regions[j-1] = regions[j-1], regions[j]
		}
	}
	return regions
}

// rewriteTopLevel converts the known identifiers of list that sit outside
// parentheses and string literals.
func rewriteTopLevel(list string, known map[string]bool, conv func(string) string) string {
	var (
		b       strings.Builder
		depth   int
		inQuote bool
		word    strings.Builder
	)
	flush := func() {
		if word.Len() == 0 {
			return
		}
		w := word.String()
		if depth == 0 && known[w] {
			w = conv(w)
		}
		b.WriteString(w)
		word.Reset()
	}
	for i := 0; i < len(list); i++ {
		c := list[i]
		if inQuote {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(list) {
				i++
				b.WriteByte(list[i])
			} else if c == '"' {
				inQuote = false
			}
			continue
		}
		if isWordByte(c) {
			word.WriteByte(c)
			continue
		}
		flush()
		switch c {
		case '"':
			inQuote = true
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		}
		b.WriteByte(c)
	}
	flush()
	return b.String()
}

// stripModifiers drops every parenthesized group, e.g. "a(sort: Desc), b"
// becomes "a, b".
func stripModifiers(s string) string {
	var (
		b       strings.Builder
		balance int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '(' {
			balance++
		}
		if balance == 0 {
			b.WriteByte(c)
		}
		if c == ')' && balance > 0 {
			balance--
		}
	}
	return b.String()
}

func convertList(list string, conv func(string) string) string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, conv(p))
	}
	return strings.Join(out, ", ")
}

// matchClose returns the index of the bracket closing the one at open,
// skipping string literals, or -1.
func matchClose(s string, open int, opening, closing byte) int {
	depth := 0
	inQuote := false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if c == '\\' {
				i++
			} else if c == '"' {
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case opening:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
