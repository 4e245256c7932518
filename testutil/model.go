package testutil

import (
	"maps"
	"slices"
)

// Model is a map-backed reference for a handle container.
// It records which keys are live with which values, and which keys have been removed.
type Model[K comparable] struct {
	live map[K]int
	keys []K
	dead []K
}

// NewModel creates an empty model.
func NewModel[K comparable]() *Model[K] {
	return &Model[K]{live: make(map[K]int)}
}

// Add records that k now holds v.
// Re-adding a dead key (slot reuse without generations) revives it.
func (m *Model[K]) Add(k K, v int) {
	if _, ok := m.live[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.live[k] = v
	m.dead = slices.DeleteFunc(m.dead, func(d K) bool { return d == k })
}

// Remove records that k was removed and returns the value it held.
func (m *Model[K]) Remove(k K) (int, bool) {
	v, ok := m.live[k]
	if !ok {
		return 0, false
	}
	delete(m.live, k)
	i := slices.Index(m.keys, k)
	m.keys[i] = m.keys[len(m.keys)-1]
	m.keys = m.keys[:len(m.keys)-1]
	m.dead = append(m.dead, k)
	return v, true
}

// Get returns the value held by k.
func (m *Model[K]) Get(k K) (int, bool) {
	v, ok := m.live[k]
	return v, ok
}

// Pick selects a live key using an arbitrary non-negative number.
func (m *Model[K]) Pick(n int) (K, bool) {
	var zero K
	if len(m.keys) == 0 {
		return zero, false
	}
	return m.keys[n%len(m.keys)], true
}

// PickDead selects a removed key using an arbitrary non-negative number.
func (m *Model[K]) PickDead(n int) (K, bool) {
	var zero K
	if len(m.dead) == 0 {
		return zero, false
	}
	return m.dead[n%len(m.dead)], true
}

// Len returns the number of live keys.
func (m *Model[K]) Len() int { return len(m.live) }

// Live returns a copy of the live key/value pairs.
func (m *Model[K]) Live() map[K]int { return maps.Clone(m.live) }

// Dead returns the keys removed and not since revived.
func (m *Model[K]) Dead() []K { return slices.Clone(m.dead) }
