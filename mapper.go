package imexport

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidwall/gjson"
)

// Mapper loads and generates mapping files for the tables known to a
// registry.
//
// A mapping file is a flat, human-readable JSON document of column name to
// field name:
//
//	{
//	    "First Name": "firstName",
//	    "Mail": "mail"
//	}
type Mapper struct {
	reg *Registry
}

// NewMapper creates a Mapper bound to the given registry.
func NewMapper(reg *Registry) *Mapper {
	return &Mapper{reg: reg}
}

// Load reads a mapping file into a bidirectional [NameMapping].
//
// Content that does not parse as a flat string-to-string document yields a
// [KindMalformedMapping] error the caller can surface to the user. A missing
// file yields a fatal-tagged [KindCriticalIO] error: file existence is
// expected to be validated upstream, so hitting this path is a bug in the
// embedding application.
func (mp *Mapper) Load(path string) (*NameMapping, error) {
	const op = "mapper.load"

	data, err := os.ReadFile(path)
	if err != nil {
		fatal := wrapError(KindCriticalIO, op, err,
			"mapping file %q can't be read; this is a critical bug, please report it", path)
		slog.Error("mapping file disappeared between check and read",
			"path", path, "error", err)
		return nil, fatal
	}

	if !gjson.ValidBytes(data) {
		return nil, newError(KindMalformedMapping, op,
			"mapping file %q is not valid JSON", path)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, newError(KindMalformedMapping, op,
			"mapping file %q is not a flat JSON object", path)
	}

	mapping := NewNameMapping()
	var (
		bad    bool
		badKey string
	)
	doc.ForEach(func(column, field gjson.Result) bool {
		if field.Type != gjson.String {
			bad = true
			badKey = column.String()
			return false
		}
		mapping.Put(column.String(), field.String())
		return true
	})
	if bad {
		return nil, newError(KindMalformedMapping, op,
			"mapping file %q: value for column %q is not a string", path, badKey)
	}

	return mapping, nil
}

// GenerateClean writes a pretty-printed identity mapping file for the named
// table, giving users a template to edit.
//
// Returns a [KindInvalidArgument] error if no manager exists for tableName.
// I/O failures propagate to the caller unchanged.
func (mp *Mapper) GenerateClean(path, tableName string) error {
	const op = "mapper.generate"

	manager, ok, err := mp.reg.Lookup(tableName)
	if err != nil {
		return err
	}
	if !ok {
		return newError(KindInvalidArgument, op, msgTableNotExists, tableName)
	}

	pairs := IdentityMapping(manager).Pairs()
	data, err := json.MarshalIndent(pairs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	// Write to a temporary file first, then rename. Readers never observe a
	// half-written mapping file.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
