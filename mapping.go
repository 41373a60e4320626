package imexport

import "sort"

// NameMapping is a bidirectional, unique correspondence between spreadsheet
// column names and record field names. Both key sets are unique; lookups
// work in both directions.
//
// NameMapping is not safe for concurrent mutation. Build it up front, then
// share it read-only across workers.
type NameMapping struct {
	columnToField map[string]string
	fieldToColumn map[string]string
}

// NewNameMapping creates an empty mapping.
func NewNameMapping() *NameMapping {
	return &NameMapping{
		columnToField: make(map[string]string),
		fieldToColumn: make(map[string]string),
	}
}

// Put records column <-> field. Any pair that would break uniqueness in
// either direction is unlinked first, so both key sets stay unique.
func (m *NameMapping) Put(column, field string) {
	if oldField, ok := m.columnToField[column]; ok {
		delete(m.fieldToColumn, oldField)
	}
	if oldColumn, ok := m.fieldToColumn[field]; ok {
		delete(m.columnToField, oldColumn)
	}
	m.columnToField[column] = field
	m.fieldToColumn[field] = column
}

// Field resolves a column name to its field name.
func (m *NameMapping) Field(column string) (string, bool) {
	field, ok := m.columnToField[column]
	return field, ok
}

// Column resolves a field name to its column name.
func (m *NameMapping) Column(field string) (string, bool) {
	column, ok := m.fieldToColumn[field]
	return column, ok
}

// Len returns the number of column/field pairs.
func (m *NameMapping) Len() int {
	return len(m.columnToField)
}

// Columns returns all column names, sorted for deterministic output.
func (m *NameMapping) Columns() []string {
	columns := make([]string, 0, len(m.columnToField))
	for c := range m.columnToField {
		columns = append(columns, c)
	}
	sort.Strings(columns)
	return columns
}

// Pairs returns a copy of the column-to-field pairs.
func (m *NameMapping) Pairs() map[string]string {
	pairs := make(map[string]string, len(m.columnToField))
	for c, f := range m.columnToField {
		pairs[c] = f
	}
	return pairs
}

// IdentityMapping builds the mapping where every column name equals the
// field name, over all fields of the given manager. Pure; no I/O.
func IdentityMapping(manager TableManager) *NameMapping {
	mapping := NewNameMapping()
	for _, field := range manager.Fields() {
		mapping.Put(field.Name, field.Name)
	}
	return mapping
}
