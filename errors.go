package slotgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/slotgo/internal/dense"
)

var (
	// ErrCorrupted indicates that a container's bookkeeping arrays disagree.
	// It can only be caused by a bug in slotgo, never by caller input.
	ErrCorrupted = errors.New("container corrupted")

	// ErrCapacityExceeded is the panic value of Add when all 2^32 slot
	// numbers are in use.
	ErrCapacityExceeded = errors.New("container capacity exceeded")
)

// InvariantError describes a broken bookkeeping invariant found by Validate.
//
// errors.Is(err, ErrCorrupted) reports true for every InvariantError.
// The original underlying error (if any) can be accessed via errors.Unwrap.
type InvariantError struct {
	Invariant string
	Position  int
	Slot      uint32
	cause     error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s (position %d, slot %d)", e.Invariant, e.Position, e.Slot)
}

func (e *InvariantError) Is(target error) bool { return target == ErrCorrupted }

func (e *InvariantError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ie *dense.InvariantError
	if errors.As(err, &ie) {
		return &InvariantError{Invariant: ie.Invariant, Position: ie.Position, Slot: uint32(ie.Slot), cause: err}
	}
	if errors.Is(err, dense.ErrSlotOverflow) {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}

	return err
}
