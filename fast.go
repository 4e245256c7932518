package slotgo

import (
	"fmt"
	"iter"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/slotgo/core"
	"github.com/hupe1980/slotgo/internal/dense"
)

// FastMap is a dense container addressed by bare slot numbers.
//
// It runs the same swap-remove algorithm as Map but keeps no generations.
// An Index returned by Add is reissued by a later Add once its element has
// been removed, after which the old Index silently refers to the new element.
// Callers must drop an Index as soon as they remove its element.
//
// The zero value is an empty FastMap ready to use. A FastMap is not safe for
// concurrent use.
type FastMap[T any] struct {
	table dense.Table[T, dense.Unchecked]
	obs   observer
}

// NewFast creates an empty FastMap.
func NewFast[T any](optFns ...Option) *FastMap[T] {
	opts := applyOptions(optFns)

	m := &FastMap[T]{obs: newObserver(opts)}
	m.table.Grow(opts.capacity)

	return m
}

// Add stores v and returns its index.
// It panics under the same conditions as Map.Add.
func (m *FastMap[T]) Add(v T) Index {
	reused := m.table.Slots() > m.table.Len()

	s, _, err := m.table.Insert(v)
	if err != nil {
		err = translateError(err)
		m.obs.corrupted(err)
		panic(err)
	}

	m.obs.added(reused, m.table.Slots(), m.table.Len())

	return Index(s)
}

// Get returns a pointer to the element stored under i.
// The pointer is only valid until the next Add, Remove or Clear.
func (m *FastMap[T]) Get(i Index) (v *T, ok bool) {
	v, st := m.table.Get(core.Slot(i), 0)
	m.obs.looked(st)
	return v, st == dense.Live
}

// Has reports whether i currently holds an element.
func (m *FastMap[T]) Has(i Index) bool {
	_, st := m.table.Resolve(core.Slot(i), 0)
	return st == dense.Live
}

// Update replaces the element stored under i with v.
func (m *FastMap[T]) Update(i Index, v T) bool {
	p, st := m.table.Get(core.Slot(i), 0)
	if st != dense.Live {
		return false
	}
	*p = v
	return true
}

// Remove deletes the element stored under i and returns it.
func (m *FastMap[T]) Remove(i Index) (v T, ok bool) {
	v, st := m.table.Remove(core.Slot(i), 0)
	m.obs.removed(st)
	return v, st == dense.Live
}

// Len returns the number of live elements.
func (m *FastMap[T]) Len() int { return m.table.Len() }

// Slots returns the number of slots allocated so far.
func (m *FastMap[T]) Slots() int { return m.table.Slots() }

// Clear removes every element. The slot numbers are handed out again by
// subsequent calls to Add.
func (m *FastMap[T]) Clear() { m.table.Reset() }

// All returns an iterator over indexes and elements in dense order.
func (m *FastMap[T]) All() iter.Seq2[Index, *T] {
	return func(yield func(Index, *T) bool) {
		for pos := 0; pos < m.table.Len(); pos++ {
			s, _, v := m.table.Entry(pos)
			if !yield(Index(s), v) {
				return
			}
		}
	}
}

// Keys returns an iterator over the indexes of all live elements.
func (m *FastMap[T]) Keys() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for i := range m.All() {
			if !yield(i) {
				return
			}
		}
	}
}

// Values returns an iterator over pointers to all live elements.
func (m *FastMap[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// LiveSlots returns a bitmap of the slot numbers currently in use.
func (m *FastMap[T]) LiveSlots() *roaring.Bitmap { return m.table.LiveSlots() }

// Clone returns a copy of m with identical indexes.
func (m *FastMap[T]) Clone() *FastMap[T] {
	return &FastMap[T]{table: *m.table.Clone(), obs: m.obs}
}

// Validate checks the container's internal consistency.
func (m *FastMap[T]) Validate() error {
	err := translateError(m.table.Validate())
	if err != nil {
		m.obs.corrupted(err)
	}
	return err
}

// String renders the live elements in dense order as "slot=value".
func (m *FastMap[T]) String() string {
	var sb strings.Builder
	sb.WriteString("FastMap{")
	first := true
	for i, v := range m.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d=%v", i, *v)
	}
	sb.WriteString("}")
	return sb.String()
}
