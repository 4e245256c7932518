package slotgo

import (
	"cmp"
	"fmt"

	"github.com/hupe1980/slotgo/core"
)

// Handle identifies an element of a Map.
//
// A Handle is a (slot, generation) pair. The slot locates the element's
// bookkeeping row; the generation tells the element apart from every other
// element that has occupied the same slot. Handles are comparable and may be
// used as map keys. The zero Handle is a valid value: it names the first
// element ever added to a Map.
type Handle struct {
	slot core.Slot
	gen  core.Generation
}

// NewHandle assembles a Handle from its parts.
func NewHandle(slot, generation uint32) Handle {
	return Handle{slot: core.Slot(slot), gen: core.Generation(generation)}
}

// Slot returns the slot number.
func (h Handle) Slot() uint32 { return uint32(h.slot) }

// Generation returns the generation the handle was issued for.
func (h Handle) Generation() uint32 { return uint32(h.gen) }

// Compare orders handles by slot, then by generation.
func (h Handle) Compare(other Handle) int {
	if c := cmp.Compare(h.slot, other.slot); c != 0 {
		return c
	}
	return cmp.Compare(h.gen, other.gen)
}

// String renders the handle for debugging purposes.
func (h Handle) String() string {
	return fmt.Sprintf("Handle(%d:%d)", h.slot, h.gen)
}

// CompareHandles is Handle.Compare in a form usable with slices.SortFunc.
func CompareHandles(a, b Handle) int { return a.Compare(b) }

// Index identifies an element of a FastMap.
//
// An Index is a bare slot number. Once the element is removed, the same
// Index silently refers to whatever is stored in that slot next.
type Index uint32
