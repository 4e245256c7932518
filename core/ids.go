package core

// Slot is a stable row in a container's slot table.
// Slots are allocated once and never released, so a Slot value stays
// meaningful for the whole lifetime of the container that issued it.
// It is strictly 32-bit, which caps a container at 4 billion slots.
type Slot uint32

// MaxSlot is the maximum possible value for a Slot.
const MaxSlot = ^Slot(0)

// Generation counts how many times a slot has been reoccupied.
// A brand-new slot starts at generation 0. The counter wraps after 2^32 reuses.
type Generation uint32
