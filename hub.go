package imexport

import (
	"log/slog"
	"sync"
)

// Hub fans progress, warning and error events out to registered observers.
//
// A hub is an explicitly owned object: construct one, register observers,
// and hand it to the orchestrators that should publish through it. It may
// outlive any single orchestrator instance.
//
// Registration and fan-out may run concurrently. Fan-out takes a snapshot
// of the observer set and releases the lock before invoking callbacks, so
// slow observer code never blocks registration or progress updates.
type Hub struct {
	mu        sync.RWMutex
	observers []Observer
}

// NewHub creates a hub with no observers.
func NewHub(observers ...Observer) *Hub {
	h := &Hub{}
	for _, o := range observers {
		h.Register(o)
	}
	return h
}

// Register adds an observer and reports whether the set changed. Nil
// observers are rejected.
func (h *Hub) Register(o Observer) bool {
	if o == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.observers = append(h.observers, o)
	return true
}

// Unregister removes the first entry identical to o and reports whether the
// set changed.
func (h *Hub) Unregister(o Observer) bool {
	if o == nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for i, existing := range h.observers {
		if existing == o {
			h.observers = append(h.observers[:i], h.observers[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}

// PublishProgress delivers a percentage to every observer exactly once.
// Delivery order is unspecified.
func (h *Hub) PublishProgress(percentage float64) {
	for _, o := range h.snapshot() {
		deliver(func() { o.OnProgress(percentage) })
	}
}

// PublishWarning delivers a warning to every observer.
func (h *Hub) PublishWarning(warning Warning) {
	for _, o := range h.snapshot() {
		deliver(func() { o.OnWarning(warning) })
	}
}

// PublishError delivers an error to every observer. Nil errors are dropped.
func (h *Hub) PublishError(err *Error) {
	if err == nil {
		return
	}
	for _, o := range h.snapshot() {
		deliver(func() { o.OnError(err) })
	}
}

// snapshot copies the observer set under the read lock.
func (h *Hub) snapshot() []Observer {
	h.mu.RLock()
	defer h.mu.RUnlock()

	result := make([]Observer, len(h.observers))
	copy(result, h.observers)
	return result
}

// deliver invokes one observer callback, isolating its faults so a failing
// observer never suppresses delivery to the others.
func deliver(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("observer panicked during delivery", "panic", r)
		}
	}()
	fn()
}
