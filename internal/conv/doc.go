// Package conv provides safe integer type conversion utilities.
//
// Slot numbers and dense positions are stored as uint32 to halve the size of
// the bookkeeping arrays. Every place where a Go int (a slice length) becomes
// one of those values goes through this package so that exhausting the 32-bit
// space is reported instead of silently wrapping.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices bounded by an existing slice length), use direct type casts instead.
package conv
