package cache

import "sync"

// Memo is a concurrency-safe, unbounded map from request key to value.
//
// Eviction policy: none. Entries live as long as the Memo; callers that need
// fresh data use Delete or Reset. When two writers race on the same key the
// first stored value wins and later writers receive it back from LoadOrStore.
type Memo[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// NewMemo creates an empty Memo.
func NewMemo[V any]() *Memo[V] {
	return &Memo[V]{entries: make(map[string]V)}
}

// Get returns the value stored under key.
func (m *Memo[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

// LoadOrStore returns the existing value for key if present (loaded=true).
// Otherwise it stores v and returns it.
func (m *Memo[V]) LoadOrStore(key string, v V) (actual V, loaded bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.entries[key]; ok {
		return existing, true
	}
	m.entries[key] = v
	return v, false
}

// Delete removes key.
func (m *Memo[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

// Reset drops every entry.
func (m *Memo[V]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]V)
}

// Len returns the number of entries.
func (m *Memo[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
