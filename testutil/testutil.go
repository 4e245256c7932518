package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// OpKind is the kind of a generated container operation.
type OpKind int

const (
	// OpAdd inserts Op.Value.
	OpAdd OpKind = iota
	// OpRemove removes the live element selected by Op.Pick.
	OpRemove
	// OpRemoveDead removes an already-removed key selected by Op.Pick.
	OpRemoveDead
)

func (k OpKind) String() string {
	switch k {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpRemoveDead:
		return "remove-dead"
	default:
		return "unknown"
	}
}

// Op is a single generated container operation.
type Op struct {
	Kind  OpKind
	Value int
	Pick  int
}

// Ops generates n operations. removeRate is the probability of a removal;
// one in ten removals targets a key that was already removed.
// Values are unique and increasing, which makes lookups unambiguous.
func (r *RNG) Ops(n int, removeRate float64) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, n)
	next := 0
	for range n {
		if r.rand.Float64() >= removeRate {
			ops = append(ops, Op{Kind: OpAdd, Value: next})
			next++
			continue
		}
		kind := OpRemove
		if r.rand.Intn(10) == 0 {
			kind = OpRemoveDead
		}
		ops = append(ops, Op{Kind: kind, Pick: r.rand.Int()})
	}
	return ops
}
