package imexport

import (
	"strings"
	"sync"
)

// Error message templates for the fixed registry conditions.
const (
	msgNoTableManagers   = "there are no table managers"
	msgTableNotExists    = "the table %q does not exist for im- or export"
	msgTableManagerIsNil = "the given table manager is nil; the table manager can't be nil"
)

// Registry is the set of table managers available for im- and export.
//
// It is constructor-injected into every [ImExporter] rather than shared
// process-wide state, so tests and embedders can isolate instances. Lookups
// may run concurrently with each other and with Add/Remove.
//
// Duplicate registration of the same manager is allowed; no identity
// de-duplication is performed.
type Registry struct {
	mu       sync.RWMutex
	managers []TableManager
}

// NewRegistry creates a registry holding the given managers. Nil managers
// are ignored.
func NewRegistry(managers ...TableManager) *Registry {
	r := &Registry{}
	for _, m := range managers {
		if m != nil {
			r.managers = append(r.managers, m)
		}
	}
	return r
}

// Add appends a table manager to the registry.
// Returns a [KindInvalidArgument] error if the manager is nil.
func (r *Registry) Add(m TableManager) error {
	if m == nil {
		return newError(KindInvalidArgument, "registry.add", msgTableManagerIsNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.managers = append(r.managers, m)
	return nil
}

// Remove removes the first entry identical to m and reports whether a
// removal occurred. Identity is interface equality, so pointer-backed
// managers are removed by reference.
func (r *Registry) Remove(m TableManager) bool {
	if m == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.managers {
		if existing == m {
			r.managers = append(r.managers[:i], r.managers[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup resolves a table name to its manager. The match is
// case-insensitive and returns the first match in enumeration order; when
// managers are registered concurrently that order is not guaranteed to be
// insertion order.
//
// A missing table is not an error: Lookup returns ok=false. An empty
// registry is a configuration defect and yields a [KindInvalidState] error.
func (r *Registry) Lookup(tableName string) (TableManager, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.managers) == 0 {
		return nil, false, newError(KindInvalidState, "registry.lookup", msgNoTableManagers)
	}
	for _, m := range r.managers {
		if strings.EqualFold(m.TableName(), tableName) {
			return m, true, nil
		}
	}
	return nil, false, nil
}

// Len returns the number of registered managers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.managers)
}

// Managers returns a snapshot copy of the registered managers.
func (r *Registry) Managers() []TableManager {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]TableManager, len(r.managers))
	copy(result, r.managers)
	return result
}
