// Package dense implements the slot table behind slotgo's handle containers.
//
// A Table keeps live elements packed in a dense array and resolves stable slot
// numbers to dense positions through a second array. Removal moves the last
// element into the hole (swap-remove), so every operation is O(1).
//
// # Layout
//
//	slotToData  slot -> dense position        (len == slots ever allocated)
//	dataToSlot  dense position -> slot        (len == slots ever allocated)
//	generations slot -> reuse counter         (Checked policy only)
//	data        dense position -> element     (len == live elements)
//
// slotToData and dataToSlot are inverse permutations over all allocated slots.
// Positions below len(data) are live; the rows past the live boundary hold the
// freed slots and act as the reuse queue, so no separate free list exists.
//
// # Policies
//
// The Checked policy keeps a generation per slot and rejects handles whose
// generation no longer matches. The Unchecked policy skips that array and lets
// a recycled slot number alias the new occupant. The policy is a type
// parameter, so the choice costs nothing at run time.
package dense
