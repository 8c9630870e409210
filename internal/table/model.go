package table

import (
	"errors"
	"fmt"

	"types-editor/internal/types"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrUnknownField   = types.ErrUnknownField
)

// Patch is a partial update to one record. Only the fields present in
// Fields are written; a nil value marks that field absent.
type Patch struct {
	Name   string
	Fields map[string]*int
}

// Model holds the loaded records in document order. It is owned by the UI
// goroutine and is not safe for concurrent use.
type Model struct {
	records []types.Item
	index   map[string]int
}

func NewModel() *Model {
	return &Model{index: make(map[string]int)}
}

// Load replaces the whole collection
func (m *Model) Load(items []types.Item) {
	m.records = make([]types.Item, len(items))
	m.index = make(map[string]int, len(items))
	for i, item := range items {
		m.records[i] = item.Clone()
		m.index[item.Name] = i
	}
}

// Clear empties the collection
func (m *Model) Clear() {
	m.Load(nil)
}

func (m *Model) Len() int {
	return len(m.records)
}

// Records returns a copy of the collection
func (m *Model) Records() []types.Item {
	out := make([]types.Item, len(m.records))
	for i, item := range m.records {
		out[i] = item.Clone()
	}
	return out
}

// Row returns a copy of the record at position i
func (m *Model) Row(i int) (types.Item, bool) {
	if i < 0 || i >= len(m.records) {
		return types.Item{}, false
	}
	return m.records[i].Clone(), true
}

// Lookup returns a copy of the record whose name equals key
func (m *Model) Lookup(key string) (types.Item, bool) {
	i, ok := m.index[key]
	if !ok {
		return types.Item{}, false
	}
	return m.records[i].Clone(), true
}

// Patch merges p into the record matching p.Name. The collection is left
// untouched when the key or any field name is unknown.
func (m *Model) Patch(p Patch) error {
	i, ok := m.index[p.Name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRecordNotFound, p.Name)
	}

	for field := range p.Fields {
		if !types.IsField(field) {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	updated := m.records[i].Clone()
	for field, value := range p.Fields {
		if err := updated.SetField(field, value); err != nil {
			return err
		}
	}
	m.records[i] = updated
	return nil
}
