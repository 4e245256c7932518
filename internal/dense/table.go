package dense

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/slotgo/core"
	"github.com/hupe1980/slotgo/internal/conv"
)

// Status reports the outcome of resolving a slot.
type Status uint8

const (
	// Live means the slot is occupied and the generation matches.
	Live Status = iota
	// OutOfRange means the slot was never allocated.
	OutOfRange
	// Vacant means the slot is allocated but currently free.
	Vacant
	// Stale means the slot is occupied by a newer generation.
	Stale
)

func (s Status) String() string {
	switch s {
	case Live:
		return "live"
	case OutOfRange:
		return "out of range"
	case Vacant:
		return "vacant"
	case Stale:
		return "stale"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Table is a slot-indexed dense array.
//
// The zero value is an empty table ready to use. A Table is not safe for
// concurrent use.
type Table[T any, P Policy] struct {
	slotToData  []uint32
	dataToSlot  []core.Slot
	generations []core.Generation
	data        []T
}

// New creates a table with room for capacity elements before reallocating.
func New[T any, P Policy](capacity int) *Table[T, P] {
	t := &Table[T, P]{}
	t.Grow(capacity)
	return t
}

func (t *Table[T, P]) checked() bool {
	var p P
	return p.tracksGenerations()
}

// Grow ensures room for n more elements without reallocating.
func (t *Table[T, P]) Grow(n int) {
	n = conv.ClampCapacity(n, uint32(core.MaxSlot))
	if n == 0 {
		return
	}
	t.data = slices.Grow(t.data, n)
	// Freed slots are reused before new ones are allocated.
	if extra := len(t.data) + n - len(t.slotToData); extra > 0 {
		t.slotToData = slices.Grow(t.slotToData, extra)
		t.dataToSlot = slices.Grow(t.dataToSlot, extra)
		if t.checked() {
			t.generations = slices.Grow(t.generations, extra)
		}
	}
}

// Len returns the number of live elements.
func (t *Table[T, P]) Len() int { return len(t.data) }

// Slots returns the number of slots ever allocated.
func (t *Table[T, P]) Slots() int { return len(t.slotToData) }

// Insert appends v and returns the slot and generation that now identify it.
//
// The first freed slot past the live boundary is reused when one exists;
// under the Checked policy its generation is bumped first. Otherwise a new
// slot is allocated at the end of the slot table.
func (t *Table[T, P]) Insert(v T) (core.Slot, core.Generation, error) {
	n := len(t.data)
	if n > len(t.slotToData) {
		return 0, 0, &InvariantError{Invariant: "dense array longer than slot table", Position: n}
	}

	if n == len(t.slotToData) {
		pos, err := conv.IntToUint32(n)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %w", ErrSlotOverflow, err)
		}
		t.slotToData = append(t.slotToData, pos)
		t.dataToSlot = append(t.dataToSlot, core.Slot(pos))
		if t.checked() {
			t.generations = append(t.generations, 0)
		}
	} else if t.checked() {
		t.generations[t.dataToSlot[n]]++
	}

	t.data = append(t.data, v)

	s := t.dataToSlot[n]
	return s, t.generation(s), nil
}

// Resolve returns the dense position of slot s.
// The generation g is ignored under the Unchecked policy.
func (t *Table[T, P]) Resolve(s core.Slot, g core.Generation) (int, Status) {
	if int(s) >= len(t.slotToData) {
		return 0, OutOfRange
	}
	pos := int(t.slotToData[s])
	if pos >= len(t.data) {
		return 0, Vacant
	}
	if t.checked() && t.generations[s] != g {
		return 0, Stale
	}
	return pos, Live
}

// Get returns a pointer to the element identified by (s, g).
// The pointer is valid until the next Insert, Remove or Reset.
func (t *Table[T, P]) Get(s core.Slot, g core.Generation) (*T, Status) {
	pos, st := t.Resolve(s, g)
	if st != Live {
		return nil, st
	}
	return &t.data[pos], Live
}

// Remove deletes the element identified by (s, g) and returns it.
// Nothing is modified unless the returned status is Live.
func (t *Table[T, P]) Remove(s core.Slot, g core.Generation) (T, Status) {
	var zero T

	pos, st := t.Resolve(s, g)
	if st != Live {
		return zero, st
	}

	last := len(t.data) - 1
	if pos != last {
		// Must be read before the swap overwrites it.
		moved := t.dataToSlot[last]

		t.data[pos], t.data[last] = t.data[last], t.data[pos]
		t.dataToSlot[pos], t.dataToSlot[last] = moved, s

		t.slotToData[moved] = uint32(pos)
		t.slotToData[s] = uint32(last)
	}

	v := t.data[last]
	t.data[last] = zero
	t.data = t.data[:last]

	return v, Live
}

// Entry returns the slot, generation and element stored at dense position pos.
// pos must be in [0, Len()).
func (t *Table[T, P]) Entry(pos int) (core.Slot, core.Generation, *T) {
	s := t.dataToSlot[pos]
	return s, t.generation(s), &t.data[pos]
}

// Generation returns the current generation of slot s, or 0 when the table
// does not track generations or s was never allocated.
func (t *Table[T, P]) Generation(s core.Slot) core.Generation {
	if int(s) >= len(t.slotToData) {
		return 0
	}
	return t.generation(s)
}

func (t *Table[T, P]) generation(s core.Slot) core.Generation {
	if !t.checked() {
		return 0
	}
	return t.generations[s]
}

// Reset removes every element but keeps all slot rows.
// Handles issued before Reset resolve as Vacant until their slot is reused.
func (t *Table[T, P]) Reset() {
	clear(t.data)
	t.data = t.data[:0]
}

// Clone returns a copy of the table. Elements are copied by assignment.
func (t *Table[T, P]) Clone() *Table[T, P] {
	return &Table[T, P]{
		slotToData:  slices.Clone(t.slotToData),
		dataToSlot:  slices.Clone(t.dataToSlot),
		generations: slices.Clone(t.generations),
		data:        slices.Clone(t.data),
	}
}

// LiveSlots returns a bitmap of the currently occupied slot numbers.
func (t *Table[T, P]) LiveSlots() *roaring.Bitmap {
	rb := roaring.New()
	for _, s := range t.dataToSlot[:len(t.data)] {
		rb.Add(uint32(s))
	}
	return rb
}

// Validate checks every bookkeeping invariant and returns the first violation.
func (t *Table[T, P]) Validate() error {
	slots := len(t.slotToData)

	if len(t.data) > slots {
		return &InvariantError{Invariant: "dense array longer than slot table", Position: len(t.data)}
	}
	if len(t.dataToSlot) != slots {
		return &InvariantError{Invariant: "reverse mapping length differs from slot table", Position: len(t.dataToSlot)}
	}
	if t.checked() && len(t.generations) != slots {
		return &InvariantError{Invariant: "generation table length differs from slot table", Position: len(t.generations)}
	}
	if !t.checked() && len(t.generations) != 0 {
		return &InvariantError{Invariant: "unchecked table carries generations", Position: len(t.generations)}
	}

	seen := roaring.New()
	for pos, s := range t.dataToSlot {
		if int(s) >= slots {
			return &InvariantError{Invariant: "reverse mapping points past slot table", Position: pos, Slot: s}
		}
		if !seen.CheckedAdd(uint32(s)) {
			return &InvariantError{Invariant: "slot occupies two positions", Position: pos, Slot: s}
		}
		if int(t.slotToData[s]) != pos {
			return &InvariantError{Invariant: "slot does not map back to its position", Position: pos, Slot: s}
		}
	}

	return nil
}

func (t *Table[T, P]) dump() string {
	var sb strings.Builder
	sb.WriteString("Table {\n")
	fmt.Fprintf(&sb, "  slotToData: %v,\n", t.slotToData)
	fmt.Fprintf(&sb, "  dataToSlot: %v,\n", t.dataToSlot)
	if t.checked() {
		fmt.Fprintf(&sb, "  generations: %v,\n", t.generations)
	}
	fmt.Fprintf(&sb, "  data: %v\n", t.data)
	sb.WriteString("}")
	return sb.String()
}
