package slotgo_test

import (
	"fmt"
	"slices"

	"github.com/hupe1980/slotgo"
)

// Example_map demonstrates handles surviving unrelated removals.
func Example_map() {
	m := slotgo.New[string]()

	alice := m.Add("alice")
	bob := m.Add("bob")
	carol := m.Add("carol")

	m.Remove(alice)

	for _, h := range []slotgo.Handle{alice, bob, carol} {
		if v, ok := m.Get(h); ok {
			fmt.Println(h, *v)
		} else {
			fmt.Println(h, "gone")
		}
	}
	// Output:
	// Handle(0:0) gone
	// Handle(1:0) bob
	// Handle(2:0) carol
}

// Example_staleHandle demonstrates that a recycled slot rejects the old handle.
func Example_staleHandle() {
	m := slotgo.New[string]()

	old := m.Add("first")
	m.Remove(old)
	fresh := m.Add("second")

	_, ok := m.Get(old)
	fmt.Println("old valid:", ok)
	fmt.Println("same slot:", old.Slot() == fresh.Slot())
	fmt.Println(fresh)
	// Output:
	// old valid: false
	// same slot: true
	// Handle(0:1)
}

// Example_fastMap demonstrates index reuse without generations.
func Example_fastMap() {
	m := slotgo.NewFast[string]()

	i := m.Add("first")
	m.Remove(i)
	m.Add("second")

	v, _ := m.Get(i)
	fmt.Println(*v)
	// Output: second
}

// Example_iteration demonstrates sorted traversal of live handles.
func Example_iteration() {
	m := slotgo.New[int]()
	for i := 1; i <= 4; i++ {
		m.Add(i * 10)
	}
	m.Remove(slotgo.NewHandle(1, 0))

	for _, h := range slices.SortedFunc(m.Keys(), slotgo.CompareHandles) {
		v, _ := m.Get(h)
		fmt.Println(h.Slot(), *v)
	}
	// Output:
	// 0 10
	// 2 30
	// 3 40
}

// Example_metrics demonstrates counting stale handle rejections.
func Example_metrics() {
	metrics := &slotgo.BasicMetricsCollector{}
	m := slotgo.New[string](slotgo.WithMetricsCollector(metrics))

	h := m.Add("x")
	m.Remove(h)
	m.Add("y")
	m.Get(h)

	stats := metrics.GetStats()
	fmt.Println("adds:", stats.AddCount, "reused:", stats.AddReused, "stale:", stats.StaleRejected)
	// Output: adds: 2 reused: 1 stale: 1
}
