package imexport

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestNewImExporterRequiresManagers(t *testing.T) {
	tests := []struct {
		name     string
		registry *Registry
	}{
		{name: "nil registry", registry: nil},
		{name: "empty registry", registry: NewRegistry()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImExporter(tt.registry, NewHub())
			if !IsKind(err, KindInvalidState) {
				t.Errorf("NewImExporter() = %v, want invalid_state error", err)
			}
		})
	}
}

func TestNewImExporterZeroedCounters(t *testing.T) {
	reg := NewRegistry(mustManager(t, "Contact", "firstName"))
	ie, err := NewImExporter(reg, nil)
	if err != nil {
		t.Fatalf("NewImExporter() failed: %v", err)
	}

	snap := ie.Snapshot()
	if snap != (ProgressSnapshot{}) {
		t.Errorf("fresh counters = %+v, want all zero", snap)
	}
	if ie.RunID() == uuid.Nil {
		t.Error("RunID() is the nil UUID")
	}
}

func TestImExporterInstancesAreIndependent(t *testing.T) {
	reg := NewRegistry(mustManager(t, "Contact", "firstName"))
	hub := NewHub()

	first, err := NewImExporter(reg, hub)
	if err != nil {
		t.Fatalf("NewImExporter() failed: %v", err)
	}
	first.AddDataSetsToProcess(10)
	first.SetSubRuns(2)

	// Counters reset only by constructing a new instance.
	second, err := NewImExporter(reg, hub)
	if err != nil {
		t.Fatalf("NewImExporter() failed: %v", err)
	}
	if snap := second.Snapshot(); snap != (ProgressSnapshot{}) {
		t.Errorf("second instance counters = %+v, want all zero", snap)
	}
	if first.RunID() == second.RunID() {
		t.Error("two instances share a run ID")
	}
}

func TestImExporterSearchTableManager(t *testing.T) {
	contact := mustManager(t, "Contact", "firstName")
	ie, err := NewImExporter(NewRegistry(contact), NewHub())
	if err != nil {
		t.Fatalf("NewImExporter() failed: %v", err)
	}

	got, ok, err := ie.SearchTableManager("CONTACT")
	if err != nil || !ok || got != contact {
		t.Errorf("SearchTableManager(\"CONTACT\") = %v, %v, %v; want contact manager", got, ok, err)
	}

	_, ok, err = ie.SearchTableManager("Invoice")
	if err != nil || ok {
		t.Errorf("SearchTableManager(\"Invoice\") = ok=%v err=%v, want not found without error", ok, err)
	}
}

func TestImExporterMappingDelegation(t *testing.T) {
	ie, err := NewImExporter(NewRegistry(mustManager(t, "Contact", "firstName", "mail")), NewHub())
	if err != nil {
		t.Fatalf("NewImExporter() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "contact.json")
	if err := ie.GenerateCleanMappingFile(path, "Contact"); err != nil {
		t.Fatalf("GenerateCleanMappingFile() failed: %v", err)
	}

	mapping, err := ie.LoadMapping(path)
	if err != nil {
		t.Fatalf("LoadMapping() failed: %v", err)
	}
	if mapping.Len() != 2 {
		t.Errorf("Len() = %d, want 2", mapping.Len())
	}
}

func TestImExporterPostsToObservers(t *testing.T) {
	obs := &recordingObserver{}
	ie, err := NewImExporter(NewRegistry(mustManager(t, "Contact", "firstName")), NewHub(obs))
	if err != nil {
		t.Fatalf("NewImExporter() failed: %v", err)
	}

	ie.PostWarning(NewWarning("empty_cell", "cell %s is empty", "B7"))
	ie.PostError(newError(KindMalformedMapping, "test", "bad"))

	obs.mu.Lock()
	defer obs.mu.Unlock()
	if len(obs.warnings) != 1 || len(obs.errors) != 1 {
		t.Errorf("observer saw %d warnings and %d errors, want 1 and 1",
			len(obs.warnings), len(obs.errors))
	}
}
