package dense

import (
	"errors"
	"fmt"

	"github.com/hupe1980/slotgo/core"
)

var (
	// ErrCorrupted is returned when the table's bookkeeping arrays disagree.
	ErrCorrupted = errors.New("slot table corrupted")

	// ErrSlotOverflow is returned when a new slot number would not fit in a core.Slot.
	ErrSlotOverflow = errors.New("slot table full")
)

// InvariantError describes a single broken bookkeeping invariant.
type InvariantError struct {
	Invariant string
	Position  int
	Slot      core.Slot
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s (position %d, slot %d)", ErrCorrupted, e.Invariant, e.Position, e.Slot)
}

func (e *InvariantError) Unwrap() error { return ErrCorrupted }
