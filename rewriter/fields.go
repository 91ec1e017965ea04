package rewriter

import (
	"github.com/erraggy/schemacase/caseerrors"
	"github.com/erraggy/schemacase/internal/naming"
	"github.com/erraggy/schemacase/schema"
)

// reshapeFields rewrites every field declaration and field-list attribute
// inside model and view blocks. Field lines never move, so no offset is kept.
func (m *migration) reshapeFields() error {
	blocks, err := schema.Scan(m.lines, schema.KindModel, schema.KindView)
	if err != nil {
		return err
	}

	for _, b := range blocks {
		header, ok := schema.ParseHeader(m.lines[b.Start])
		if !ok {
			return &caseerrors.DeclarationError{Line: b.Start + 1, Text: m.lines[b.Start]}
		}
		entity := m.rawEntity(header.Name)
		if m.store.IsDisabled(entity) {
			continue
		}
		own := m.fieldConverter(entity)

		for i := b.Start; i <= b.End; i++ {
			line := m.lines[i]
			updated := line
			related := entity

			// the header row can only carry trailing attributes
			if i > b.Start && i < b.End {
				if f, ok := schema.ParseField(line); ok {
					updated = m.reshapeField(entity, f)
					if nf, ok := schema.ParseField(updated); ok && !schema.IsPrimitive(nf.Type) {
						related = m.rawEntity(nf.BaseType())
					}
					if updated != line {
						m.record(Change{Type: ChangeRewroteField, Line: i + 1, Scope: entity + "." + f.Name, Before: line, After: updated})
					}
				}
			}

			withRelation := schema.RewriteRelation(updated, own, m.fieldConverter(related))
			if withRelation != updated {
				m.record(Change{Type: ChangeRewroteRelation, Line: i + 1, Scope: entity, Before: updated, After: withRelation})
			}
			withAttrs := schema.RewriteBlockAttribute(withRelation, own)
			if withAttrs != withRelation {
				m.record(Change{Type: ChangeRewroteAttribute, Line: i + 1, Scope: entity, Before: withRelation, After: withAttrs})
			}
			m.lines[i] = withAttrs
		}
	}
	return nil
}

// reshapeField renames a field, recases its type and decides its @map.
func (m *migration) reshapeField(entity string, f schema.Field) string {
	raw := f.Name
	if m.store.IsDisabled(entity, raw) {
		return f.String()
	}

	declared := m.store.Field(entity, raw).Apply(raw)
	if f.IsArray() && m.store.IsPlural(entity, raw) {
		declared = naming.ToPlural(declared)
	}

	stored := raw
	existing, hasMap := f.MapName()
	if c := m.store.MapField(entity, raw); c != nil {
		stored = c.Apply(declared)
	} else if hasMap {
		stored = existing
	}

	isEnum := false
	typ := f.Type
	switch renamed, ok := m.enums[typ]; {
	case ok:
		typ = renamed
		isEnum = true
	case !schema.IsPrimitive(typ):
		if target := m.rawEntity(typ); !m.store.IsDisabled(target) {
			typ = m.store.Table(target).Apply(typ)
		}
	}

	mappable := isEnum || (schema.IsPrimitive(f.Type) && !f.HasRelation())
	if mappable {
		if declared == stored {
			f = f.WithoutMap()
		} else {
			f = f.WithMapName(stored)
		}
	}
	f.Name = declared
	f.Type = typ
	return f.String()
}

// fieldConverter returns the identifier conversion for field lists in the
// scope of entity. Disabled fields keep their names.
func (m *migration) fieldConverter(entity string) func(string) string {
	return func(name string) string {
		if m.store.IsDisabled(entity, name) {
			return name
		}
		return m.store.Field(entity, name).Apply(name)
	}
}
