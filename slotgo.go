package slotgo

import (
	"fmt"
	"iter"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/slotgo/internal/dense"
)

// Map is a dense container addressed by generational handles.
//
// Add returns a Handle that stays valid until the element is removed, no
// matter how many other elements come and go. Once removed, the handle is
// rejected forever, even after its slot has been recycled for a new element.
//
// The zero value is an empty Map ready to use. A Map is not safe for
// concurrent use; see package locked for a guarded variant.
type Map[T any] struct {
	table dense.Table[T, dense.Checked]
	obs   observer
}

// New creates an empty Map.
func New[T any](optFns ...Option) *Map[T] {
	opts := applyOptions(optFns)

	m := &Map[T]{obs: newObserver(opts)}
	m.table.Grow(opts.capacity)

	return m
}

// Add stores v and returns its handle.
//
// Add panics with an error wrapping ErrCorrupted if the container's
// bookkeeping is inconsistent, and with an error wrapping
// ErrCapacityExceeded once 2^32 slots are in use.
func (m *Map[T]) Add(v T) Handle {
	reused := m.table.Slots() > m.table.Len()

	s, g, err := m.table.Insert(v)
	if err != nil {
		err = translateError(err)
		m.obs.corrupted(err)
		panic(err)
	}

	m.obs.added(reused, m.table.Slots(), m.table.Len())

	return Handle{slot: s, gen: g}
}

// Get returns a pointer to the element identified by h.
//
// ok is false if h was never issued by this Map or its element has been
// removed. The pointer is only valid until the next Add, Remove or Clear.
func (m *Map[T]) Get(h Handle) (v *T, ok bool) {
	v, st := m.table.Get(h.slot, h.gen)
	m.obs.looked(st)
	if st == dense.Stale {
		m.obs.stale(h, uint32(m.table.Generation(h.slot)))
	}
	return v, st == dense.Live
}

// Has reports whether h identifies a live element.
func (m *Map[T]) Has(h Handle) bool {
	_, st := m.table.Resolve(h.slot, h.gen)
	return st == dense.Live
}

// Update replaces the element identified by h with v.
// It reports false, and changes nothing, if h does not resolve.
func (m *Map[T]) Update(h Handle, v T) bool {
	p, st := m.table.Get(h.slot, h.gen)
	if st != dense.Live {
		return false
	}
	*p = v
	return true
}

// Remove deletes the element identified by h and returns it.
// ok is false, and nothing is modified, if h does not resolve.
func (m *Map[T]) Remove(h Handle) (v T, ok bool) {
	v, st := m.table.Remove(h.slot, h.gen)
	m.obs.removed(st)
	if st == dense.Stale {
		m.obs.stale(h, uint32(m.table.Generation(h.slot)))
	}
	return v, st == dense.Live
}

// Len returns the number of live elements.
func (m *Map[T]) Len() int { return m.table.Len() }

// Slots returns the number of slots allocated so far.
// The slot table never shrinks, so Slots is the high-water mark of Len.
func (m *Map[T]) Slots() int { return m.table.Slots() }

// Clear removes every element. Handles issued before Clear are rejected
// from then on, including after their slots are reused.
func (m *Map[T]) Clear() { m.table.Reset() }

// All returns an iterator over handles and elements in dense order.
//
// Dense order is not insertion order: each removal moves the last element
// into the hole it leaves. Mutating the Map while iterating is not allowed.
func (m *Map[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for pos := 0; pos < m.table.Len(); pos++ {
			s, g, v := m.table.Entry(pos)
			if !yield(Handle{slot: s, gen: g}, v) {
				return
			}
		}
	}
}

// Keys returns an iterator over the handles of all live elements.
func (m *Map[T]) Keys() iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		for h := range m.All() {
			if !yield(h) {
				return
			}
		}
	}
}

// Values returns an iterator over pointers to all live elements.
func (m *Map[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// ContainsFunc reports whether any live element satisfies pred.
func (m *Map[T]) ContainsFunc(pred func(*T) bool) bool {
	for v := range m.Values() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Contains reports whether m holds an element equal to v. It is a linear scan.
func Contains[T comparable](m *Map[T], v T) bool {
	return m.ContainsFunc(func(e *T) bool { return *e == v })
}

// LiveSlots returns a bitmap of the slot numbers currently in use.
// The bitmap is a snapshot; later changes to m are not reflected in it.
func (m *Map[T]) LiveSlots() *roaring.Bitmap { return m.table.LiveSlots() }

// Clone returns a copy of m with identical handles.
// Elements are copied by assignment. The copy shares m's logger and metrics.
func (m *Map[T]) Clone() *Map[T] {
	return &Map[T]{table: *m.table.Clone(), obs: m.obs}
}

// Validate checks the container's internal consistency.
// It returns nil or an *InvariantError.
func (m *Map[T]) Validate() error {
	err := translateError(m.table.Validate())
	if err != nil {
		m.obs.corrupted(err)
	}
	return err
}

// String renders the live elements in dense order as "slot:generation=value".
func (m *Map[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Map{")
	first := true
	for h, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d:%d=%v", h.slot, h.gen, *v)
	}
	sb.WriteString("}")
	return sb.String()
}
