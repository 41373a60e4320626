package imexport

import (
	"unicode"
	"unicode/utf8"
)

// TableManager binds a record type to its table name and mappable fields.
// Embedders provide one implementation per record type; the framework only
// calls into it.
type TableManager interface {
	// TableName returns the table's identity, matched case-insensitively
	// during [Registry.Lookup].
	TableName() string

	// Fields returns the ordered set of mappable fields, unique by field
	// name.
	Fields() []FieldDescriptor
}

// GetterFunc reads a field value from a record.
type GetterFunc func(record any) (string, error)

// SetterFunc writes a field value into a record.
type SetterFunc func(record any, value string) error

// FieldDescriptor describes one mappable field of a record type.
//
// Get and Set are optional accessor closures a manager may declare so that
// concrete importers can move cell values without runtime reflection. The
// framework itself never invokes them; it only derives the conventional
// accessor names from the field name.
type FieldDescriptor struct {
	// Name is the field name. Must be non-empty.
	Name string

	Get GetterFunc
	Set SetterFunc
}

const (
	getterPrefix = "get"
	setterPrefix = "set"
)

// GetterName derives the conventional getter method name for the field.
// Example: field "importField" derives "getImportField".
func (f FieldDescriptor) GetterName() string {
	return fieldNameToMethodName(f.Name, getterPrefix)
}

// SetterName derives the conventional setter method name for the field.
// Example: field "x" derives "setX".
func (f FieldDescriptor) SetterName() string {
	return fieldNameToMethodName(f.Name, setterPrefix)
}

// fieldNameToMethodName capitalizes the first character of the field name
// and prepends the method prefix.
func fieldNameToMethodName(fieldName, prefix string) string {
	if fieldName == "" {
		return prefix
	}
	r, size := utf8.DecodeRuneInString(fieldName)
	return prefix + string(unicode.ToUpper(r)) + fieldName[size:]
}

// Observer receives progress, warning and error notifications from a [Hub].
// Implementations must tolerate concurrent callbacks; delivery order across
// observers is unspecified.
type Observer interface {
	// OnProgress receives the overall completion percentage (0-100).
	OnProgress(percentage float64)

	// OnWarning receives a non-fatal condition raised mid-run.
	OnWarning(warning Warning)

	// OnError receives a structured error raised mid-run.
	OnError(err *Error)
}
