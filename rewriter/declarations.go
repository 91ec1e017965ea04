package rewriter

import (
	"slices"
	"strings"

	"github.com/erraggy/schemacase/caseerrors"
	"github.com/erraggy/schemacase/convention"
	"github.com/erraggy/schemacase/schema"
)

// declarationPass describes how one family of block headers is rewritten.
type declarationPass struct {
	kinds   []schema.Kind
	renamed ChangeType
	declare func(s *convention.Store, name string) *convention.Case
	stored  func(s *convention.Store, name string) *convention.Case
	// models records declared names so field types can be traced back
	models bool
}

var (
	modelPass = declarationPass{
		kinds:   []schema.Kind{schema.KindModel, schema.KindView},
		renamed: ChangeRenamedModel,
		declare: func(s *convention.Store, name string) *convention.Case { return s.Table(name) },
		stored:  func(s *convention.Store, name string) *convention.Case { return s.MapTable(name) },
		models:  true,
	}
	enumPass = declarationPass{
		kinds:   []schema.Kind{schema.KindEnum},
		renamed: ChangeRenamedEnum,
		declare: func(s *convention.Store, name string) *convention.Case { return s.Enum(name) },
		stored:  func(s *convention.Store, name string) *convention.Case { return s.MapEnum(name) },
	}
)

// reshapeDeclarations renames block headers and keeps exactly one @@map per
// block whose declared and stored names differ. Block bounds come from a
// single scan and are re-anchored with the running offset of inserted and
// removed lines.
func (m *migration) reshapeDeclarations(pass declarationPass) error {
	blocks, err := schema.Scan(m.lines, pass.kinds...)
	if err != nil {
		return err
	}

	offset := 0
	for _, base := range blocks {
		b := base.Shift(offset)
		header, ok := schema.ParseHeader(m.lines[b.Start])
		if !ok {
			return &caseerrors.DeclarationError{Line: b.Start + 1, Text: m.lines[b.Start]}
		}
		raw := header.Name
		if m.store.IsDisabled(raw) {
			m.log.Debug("skipping disabled block", "kind", string(b.Kind), "name", raw)
			if pass.models {
				m.entities[raw] = raw
			}
			continue
		}

		declared := pass.declare(m.store, raw).Apply(raw)
		existing, mapLine := findBlockMap(m.lines, b)
		stored := raw
		if c := pass.stored(m.store, raw); c != nil {
			stored = c.Apply(raw)
		} else if mapLine >= 0 {
			stored = existing
		}
		if pass.models {
			m.entities[declared] = raw
		}

		if declared == stored && mapLine >= 0 {
			before := m.lines[mapLine]
			after := schema.RemoveBlockMap(before)
			if strings.TrimSpace(after) == "" {
				m.lines = slices.Delete(m.lines, mapLine, mapLine+1)
				offset--
				b.End--
				after = ""
			} else {
				m.lines[mapLine] = after
			}
			m.record(Change{Type: ChangeRemovedMap, Line: mapLine + 1, Scope: raw, Before: before, After: after})
			mapLine = -1
		}

		if declared != raw {
			before := m.lines[b.Start]
			// the header line itself may have just lost a @@map
			header, _ = schema.ParseHeader(before)
			header.Name = declared
			m.lines[b.Start] = header.String()
			m.record(Change{Type: pass.renamed, Line: b.Start + 1, Scope: raw, Before: before, After: m.lines[b.Start]})
		}

		if declared == stored {
			continue
		}
		if mapLine >= 0 {
			before := m.lines[mapLine]
			after := schema.ReplaceBlockMapName(before, stored)
			if after != before {
				m.lines[mapLine] = after
				m.record(Change{Type: ChangeUpdatedMap, Line: mapLine + 1, Scope: raw, Before: before, After: after})
			}
			continue
		}
		if b.Start == b.End {
			expanded := expandBlock(m.lines[b.Start])
			m.lines = slices.Replace(m.lines, b.Start, b.Start+1, expanded...)
			offset += len(expanded) - 1
		}
		mapAttr := schema.BlockMapLine(stored)
		m.lines = slices.Insert(m.lines, b.Start+1, mapAttr)
		offset++
		m.record(Change{Type: ChangeInsertedMap, Line: b.Start + 2, Scope: raw, After: mapAttr})
	}
	return nil
}

// buildEnumMap records the final name of every enum before any field type is
// rewritten. Disabled enums map to themselves.
func (m *migration) buildEnumMap() error {
	blocks, err := schema.Scan(m.lines, schema.KindEnum)
	if err != nil {
		return err
	}
	for _, b := range blocks {
		header, ok := schema.ParseHeader(m.lines[b.Start])
		if !ok {
			return &caseerrors.DeclarationError{Line: b.Start + 1, Text: m.lines[b.Start]}
		}
		raw := header.Name
		if m.store.IsDisabled(raw) {
			m.enums[raw] = raw
			continue
		}
		m.enums[raw] = m.store.Enum(raw).Apply(raw)
	}
	return nil
}

// findBlockMap returns the value and line index of the last @@map in b, or
// -1 when the block has none.
func findBlockMap(lines []string, b schema.Block) (string, int) {
	for i := b.End; i >= b.Start; i-- {
		if name, ok := schema.BlockMapName(lines[i]); ok {
			return name, i
		}
	}
	return "", -1
}

// expandBlock splits a single-line block such as "model Tag {}" over several
// lines so an attribute line can be inserted after the header.
func expandBlock(line string) []string {
	open := strings.Index(line, "{")
	closing := strings.LastIndex(line, "}")
	if open < 0 || closing < open {
		return []string{line}
	}
	out := []string{strings.TrimRight(line[:open], " \t") + " {"}
	if inner := strings.TrimSpace(line[open+1 : closing]); inner != "" {
		out = append(out, "  "+inner)
	}
	return append(out, line[closing:])
}
