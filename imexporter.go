package imexport

import (
	"log/slog"

	"github.com/google/uuid"
)

// ImExporter is the base every concrete importer and exporter builds on. It
// composes the registry, the name mapper, the progress tracker and the
// observer hub; the concrete implementation iterates rows and drives the
// promoted [Tracker] lifecycle hooks while doing so.
//
// An instance moves from constructed (registry verified non-empty, counters
// zeroed) through running (counters mutated as sub-runs and rows are
// processed) to implicitly done. There is no reset; a new run is a new
// instance.
//
// Multiple instances, and multiple sub-run workers within one instance, may
// run in parallel.
type ImExporter struct {
	*Tracker

	runID    uuid.UUID
	registry *Registry
	hub      *Hub
	mapper   *Mapper

	maxParallel int
}

// NewImExporter constructs an orchestrator over the given registry and hub.
//
// The registry must already contain at least one table manager; a nil or
// empty registry is a configuration error in the embedding application and
// yields a [KindInvalidState] error.
func NewImExporter(registry *Registry, hub *Hub) (*ImExporter, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, newError(KindInvalidState, "imexporter.new", msgNoTableManagers)
	}
	if hub == nil {
		hub = NewHub()
	}

	ie := &ImExporter{
		Tracker:  NewTracker(hub),
		runID:    uuid.New(),
		registry: registry,
		hub:      hub,
		mapper:   NewMapper(registry),
	}
	slog.Debug("imexporter constructed",
		"run_id", ie.runID, "table_managers", registry.Len())
	return ie, nil
}

// RunID identifies this orchestrator instance in logs and diagnostics.
func (ie *ImExporter) RunID() uuid.UUID {
	return ie.runID
}

// Registry returns the table-manager registry this instance resolves
// against.
func (ie *ImExporter) Registry() *Registry {
	return ie.registry
}

// SearchTableManager resolves a table name case-insensitively against the
// registry. See [Registry.Lookup] for the match contract.
func (ie *ImExporter) SearchTableManager(tableName string) (TableManager, bool, error) {
	return ie.registry.Lookup(tableName)
}

// LoadMapping reads a mapping file. See [Mapper.Load].
func (ie *ImExporter) LoadMapping(path string) (*NameMapping, error) {
	return ie.mapper.Load(path)
}

// GenerateCleanMappingFile writes an identity mapping file for the named
// table. See [Mapper.GenerateClean].
func (ie *ImExporter) GenerateCleanMappingFile(path, tableName string) error {
	return ie.mapper.GenerateClean(path, tableName)
}

// PostWarning pushes a warning to all observers. Warnings do not abort the
// run.
func (ie *ImExporter) PostWarning(warning Warning) {
	ie.hub.PublishWarning(warning)
}

// PostError pushes a non-fatal error to all observers. Errors posted here
// do not abort the run; aborting is the concrete implementation's call.
func (ie *ImExporter) PostError(err *Error) {
	ie.hub.PublishError(err)
}
