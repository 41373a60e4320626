package imexport

// StaticManager is a TableManager declared from a table name and a list of
// field names. It covers embedders that have no record type to reflect
// over: tests, CLI tools, and importers that address records by field name.
type StaticManager struct {
	name   string
	fields []FieldDescriptor
}

// NewStaticManager creates a manager for tableName over the given fields.
// Field order is preserved; a field name occurring twice is kept once, at
// its first position. Empty table or field names yield a
// [KindInvalidArgument] error.
func NewStaticManager(tableName string, fieldNames ...string) (*StaticManager, error) {
	const op = "staticmanager.new"

	if tableName == "" {
		return nil, newError(KindInvalidArgument, op, "table name must not be empty")
	}

	seen := make(map[string]struct{}, len(fieldNames))
	fields := make([]FieldDescriptor, 0, len(fieldNames))
	for _, name := range fieldNames {
		if name == "" {
			return nil, newError(KindInvalidArgument, op,
				"field names must not be empty (table %q)", tableName)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		fields = append(fields, FieldDescriptor{Name: name})
	}

	return &StaticManager{name: tableName, fields: fields}, nil
}

// TableName returns the table's identity.
func (m *StaticManager) TableName() string {
	return m.name
}

// Fields returns a copy of the ordered field set.
func (m *StaticManager) Fields() []FieldDescriptor {
	fields := make([]FieldDescriptor, len(m.fields))
	copy(fields, m.fields)
	return fields
}
