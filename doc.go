// Package slotgo provides dense containers addressed by stable handles.
//
// A container stores its elements contiguously and hands out a small handle
// for each one. The handle keeps working while unrelated elements are added
// and removed, even though removal compacts the storage by moving the last
// element into the freed position.
//
// # Quick Start
//
//	m := slotgo.New[string]()
//	alice := m.Add("alice")
//	bob := m.Add("bob")
//
//	m.Remove(alice)
//	name, _ := m.Get(bob) // *name == "bob"
//	_, ok := m.Get(alice) // false, forever
//
// # Variants
//
// Map issues generational handles (slot + generation). A slot freed by
// Remove is recycled by a later Add with its generation bumped, so the old
// handle never resolves to the new element.
//
// FastMap issues bare slot numbers (Index). It skips the generation array and
// the comparison on every lookup, at the price of aliasing: after Remove, the
// old Index names whatever Add stores in that slot next.
//
// Both variants run the same algorithm; every operation is O(1) except
// Contains, which scans.
//
// # Iteration
//
// All, Keys and Values return lazy iterators over the dense array. Stopping
// early costs only the elements visited. The order changes with removals.
//
//	for h, v := range m.All() {
//	    fmt.Println(h, *v)
//	}
//
// # Memory
//
// The slot table grows to the maximum number of elements ever held at once
// and never shrinks. The dense array shrinks with each Remove.
//
// # Concurrency
//
// Containers are not safe for concurrent use. Package locked wraps a Map in
// a read/write mutex.
package slotgo
