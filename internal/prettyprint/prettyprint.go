// Package prettyprint re-indents and column-aligns Prisma schema blocks.
//
// Block bodies of models, views and enums are indented by two spaces. Field
// declarations in consecutive lines of a model or view are aligned on their
// name and type columns; a blank line, comment or attribute line starts a
// new run. Lines outside those blocks are left as they are.
package prettyprint

import (
	"bytes"
	"strings"
	"text/tabwriter"

	"github.com/erraggy/schemacase/schema"
)

const indent = "  "

// escape protects s from tabwriter cell splitting.
func escape(s string) string {
	return string(tabwriter.Escape) + s + string(tabwriter.Escape)
}

// Format returns text with its block bodies normalized. Format(Format(x))
// equals Format(x).
func Format(text string) string {
	lines := schema.SplitLines(text)
	rows := make([]bool, len(lines))

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', tabwriter.StripEscape)

	var (
		inside bool
		kind   schema.Kind
	)
	for i, line := range lines {
		out := escape(line)
		trimmed := strings.TrimSpace(line)

		switch {
		case !inside:
			h, ok := schema.ParseHeader(line)
			if !ok {
				break
			}
			out = escape(trimmed)
			if !strings.HasSuffix(strings.TrimSpace(h.Tail), "}") {
				inside, kind = true, h.Kind()
			}
		case strings.HasSuffix(trimmed, "}"):
			inside = false
			out = escape(trimmed)
			if trimmed != "}" {
				out = escape(indent + trimmed)
			}
		case trimmed == "":
			out = ""
		case kind != schema.KindEnum:
			f, ok := schema.ParseField(trimmed)
			if !ok {
				out = escape(indent + trimmed)
				break
			}
			out = escape(indent+f.Name) + "\t" + escape(f.Type+f.Modifiers) + "\t" + escape(strings.TrimSpace(f.Rest))
			rows[i] = true
		default:
			out = escape(indent + trimmed)
		}

		_, _ = tw.Write([]byte(out + "\n"))
	}
	_ = tw.Flush()

	formatted := schema.SplitLines(strings.TrimSuffix(buf.String(), "\n"))
	for i := range formatted {
		if i < len(rows) && rows[i] {
			formatted[i] = strings.TrimRight(formatted[i], " ")
		}
	}
	return schema.JoinLines(formatted)
}
