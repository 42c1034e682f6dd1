// Package settings holds the runtime settings document that the shell reads
// once at startup, and the bootstrap that fetches it.
package settings

import (
	"fmt"
	"sync"
	"time"
)

// Status describes where the holder is in its one-shot lifecycle.
type Status string

const (
	StatusPending Status = "pending"
	StatusLoaded  Status = "loaded"
	StatusFailed  Status = "failed"
)

// Snapshot is a point-in-time copy of the holder's state.
type Snapshot struct {
	Status   Status
	Source   string
	LoadID   string
	LoadedAt time.Time
	Err      error
	Runtime  Runtime
	Keys     int
}

// Holder is the in-memory store for runtime settings. It is created once in
// bootstrap and handed to every consumer that needs a setting.
//
// Set replaces the whole map; reads of absent keys yield nil.
type Holder struct {
	mu      sync.RWMutex
	values  map[string]any
	runtime Runtime

	status   Status
	source   string
	loadID   string
	loadedAt time.Time
	err      error
}

// NewHolder returns an empty holder in the pending state. Runtime() reports
// defaults until a document is stored.
func NewHolder() *Holder {
	return &Holder{
		runtime: DefaultRuntime(),
		status:  StatusPending,
	}
}

// Set replaces the stored map unconditionally. The map is not validated and
// is not copied; callers must not mutate it afterwards.
func (h *Holder) Set(values map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values = values
}

// Get returns the value stored under key, or nil if the map was never set or
// the key is absent.
func (h *Holder) Get(key string) any {
	v, _ := h.Lookup(key)
	return v
}

// Lookup returns the value stored under key and whether it was present.
func (h *Holder) Lookup(key string) (any, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.values == nil {
		return nil, false
	}
	v, ok := h.values[key]
	return v, ok
}

// String returns the value under key formatted as a string, or "" when
// absent or nil.
func (h *Holder) String(key string) string {
	v, ok := h.Lookup(key)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Runtime returns the typed view of the known keys.
func (h *Holder) Runtime() Runtime {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.runtime
}

// Status returns the current load status.
func (h *Holder) Status() Status {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.status
}

// Degraded reports whether the settings load failed and the shell is
// running on defaults.
func (h *Holder) Degraded() bool {
	return h.Status() == StatusFailed
}

// Snapshot returns a copy of the holder's metadata.
func (h *Holder) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Snapshot{
		Status:   h.status,
		Source:   h.source,
		LoadID:   h.loadID,
		LoadedAt: h.loadedAt,
		Err:      h.err,
		Runtime:  h.runtime,
		Keys:     len(h.values),
	}
}

// store records a successfully parsed document.
func (h *Holder) store(doc Document, source, loadID string, at time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values = doc.Values
	h.runtime = doc.Runtime
	h.status = StatusLoaded
	h.source = source
	h.loadID = loadID
	h.loadedAt = at
	h.err = nil
}

// fail records a failed load. The stored map is left untouched.
func (h *Holder) fail(err error, source, loadID string, at time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = StatusFailed
	h.source = source
	h.loadID = loadID
	h.loadedAt = at
	h.err = err
}
