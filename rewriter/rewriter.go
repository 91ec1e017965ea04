package rewriter

import (
	"fmt"

	"github.com/erraggy/schemacase/convention"
	"github.com/erraggy/schemacase/schema"
)

// ChangeType identifies the kind of rewrite recorded in a Change
type ChangeType string

const (
	// ChangeRenamedModel indicates a model or view header was renamed
	ChangeRenamedModel ChangeType = "renamed-model"
	// ChangeRenamedEnum indicates an enum header was renamed
	ChangeRenamedEnum ChangeType = "renamed-enum"
	// ChangeInsertedMap indicates a @@map line was added to a block
	ChangeInsertedMap ChangeType = "inserted-map"
	// ChangeUpdatedMap indicates the value of an existing @@map changed
	ChangeUpdatedMap ChangeType = "updated-map"
	// ChangeRemovedMap indicates a redundant @@map was dropped
	ChangeRemovedMap ChangeType = "removed-map"
	// ChangeRewroteField indicates a field line changed: its name, type or @map
	ChangeRewroteField ChangeType = "rewrote-field"
	// ChangeRewroteRelation indicates the lists of a @relation attribute changed
	ChangeRewroteRelation ChangeType = "rewrote-relation"
	// ChangeRewroteAttribute indicates a @@unique, @@id or @@index list changed
	ChangeRewroteAttribute ChangeType = "rewrote-attribute"
)

// Change is a single rewrite applied to the document.
type Change struct {
	// Type identifies the category of change
	Type ChangeType
	// Line is the 1-based line the change was made on, numbered as the
	// document stood when the change was applied
	Line int
	// Scope is the entity, or "entity.field", the change belongs to
	Scope string
	// Before is the line before the change (empty for insertions)
	Before string
	// After is the line after the change (empty for removals)
	After string
}

// Result contains the outcome of a migration.
type Result struct {
	// Text is the rewritten document
	Text string
	// Changes lists every rewrite in the order applied
	Changes []Change
	// ChangeCount is len(Changes)
	ChangeCount int
	// Enums maps each enum's original name to its rewritten name
	Enums map[string]string
}

// HasChanges reports whether the document was modified.
func (r *Result) HasChanges() bool {
	return r.ChangeCount > 0
}

// Rewriter applies a convention store to schema documents.
type Rewriter struct {
	// Store resolves the conventions. Nil means the defaults: pascal models
	// and enums, camel fields.
	Store *convention.Store
	// Logger receives a debug entry per change. Nil means NopLogger.
	Logger Logger
}

// New creates a Rewriter for store.
func New(store *convention.Store) *Rewriter {
	return &Rewriter{Store: store}
}

// Migrate rewrites text with the conventions of store.
func Migrate(text string, store *convention.Store) (*Result, error) {
	return New(store).Migrate(text)
}

// Migrate rewrites text. The four passes run in order over a private copy of
// the lines: model and view declarations, the enum rename map, enum
// declarations, then fields and their annotations. On error no Result is
// returned.
func (r *Rewriter) Migrate(text string) (*Result, error) {
	store := r.Store
	if store == nil {
		var err error
		if store, err = convention.New(nil); err != nil {
			return nil, fmt.Errorf("rewriter: %w", err)
		}
	}
	log := r.Logger
	if log == nil {
		log = NopLogger{}
	}

	m := &migration{
		store:    store,
		log:      log,
		lines:    schema.SplitLines(text),
		entities: make(map[string]string),
		enums:    make(map[string]string),
	}

	if err := m.reshapeDeclarations(modelPass); err != nil {
		return nil, fmt.Errorf("rewriter: model declarations: %w", err)
	}
	if err := m.buildEnumMap(); err != nil {
		return nil, fmt.Errorf("rewriter: enum names: %w", err)
	}
	if err := m.reshapeDeclarations(enumPass); err != nil {
		return nil, fmt.Errorf("rewriter: enum declarations: %w", err)
	}
	if err := m.reshapeFields(); err != nil {
		return nil, fmt.Errorf("rewriter: fields: %w", err)
	}

	log.Info("migrated schema", "changes", len(m.changes))
	return &Result{
		Text:        schema.JoinLines(m.lines),
		Changes:     m.changes,
		ChangeCount: len(m.changes),
		Enums:       m.enums,
	}, nil
}

// migration is the state of one Migrate call.
type migration struct {
	store *convention.Store
	log   Logger
	lines []string
	// entities maps declared model and view names back to their original names
	entities map[string]string
	// enums maps original enum names to their rewritten names
	enums   map[string]string
	changes []Change
}

func (m *migration) record(c Change) {
	m.changes = append(m.changes, c)
	m.log.Debug(string(c.Type), "line", c.Line, "scope", c.Scope, "before", c.Before, "after", c.After)
}

// rawEntity returns the original name of a model or view referenced by name.
func (m *migration) rawEntity(name string) string {
	if raw, ok := m.entities[name]; ok {
		return raw
	}
	return name
}
