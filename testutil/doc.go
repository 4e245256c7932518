// Package testutil provides testing utilities for slotgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, random operation sequences and a
// map-backed reference model to check containers against.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(1000, 0.4) // 40% removals
//
// # Reference Model
//
//	model := testutil.NewModel[slotgo.Handle]()
//	for _, op := range ops {
//	    switch op.Kind {
//	    case testutil.OpAdd:
//	        model.Add(m.Add(op.Value), op.Value)
//	    case testutil.OpRemove:
//	        h, ok := model.Pick(op.Pick)
//	        ...
//	    }
//	}
package testutil
