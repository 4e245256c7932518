package locked

import (
	"sync"

	"github.com/hupe1980/slotgo"
)

// Map is a slotgo.Map that is safe for concurrent use.
type Map[T any] struct {
	mu sync.RWMutex
	m  *slotgo.Map[T]
}

// New creates an empty Map. Options are passed to slotgo.New.
func New[T any](optFns ...slotgo.Option) *Map[T] {
	return &Map[T]{m: slotgo.New[T](optFns...)}
}

// Add stores v and returns its handle.
func (l *Map[T]) Add(v T) slotgo.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Add(v)
}

// AddAll stores every value under a single lock acquisition.
func (l *Map[T]) AddAll(vs ...T) []slotgo.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	hs := make([]slotgo.Handle, len(vs))
	for i, v := range vs {
		hs[i] = l.m.Add(v)
	}
	return hs
}

// Get returns a copy of the element identified by h.
func (l *Map[T]) Get(h slotgo.Handle) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if p, ok := l.m.Get(h); ok {
		return *p, true
	}
	var zero T
	return zero, false
}

// Has reports whether h identifies a live element.
func (l *Map[T]) Has(h slotgo.Handle) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Has(h)
}

// Update replaces the element identified by h.
func (l *Map[T]) Update(h slotgo.Handle, v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Update(h, v)
}

// Remove deletes the element identified by h and returns it.
func (l *Map[T]) Remove(h slotgo.Handle) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.Remove(h)
}

// Len returns the number of live elements.
func (l *Map[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Len()
}

// View runs fn with shared access to the underlying map.
// fn must not modify the map or retain pointers obtained from it.
func (l *Map[T]) View(fn func(m *slotgo.Map[T])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.m)
}

// Mutate runs fn with exclusive access to the underlying map.
func (l *Map[T]) Mutate(fn func(m *slotgo.Map[T])) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.m)
}

// Snapshot returns an unguarded copy of the current contents.
func (l *Map[T]) Snapshot() *slotgo.Map[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Clone()
}

// Validate checks the underlying map's internal consistency.
func (l *Map[T]) Validate() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.m.Validate()
}
