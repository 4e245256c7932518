package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// ClampCapacity bounds a caller-supplied capacity hint to [0, limit].
func ClampCapacity(v int, limit uint32) int {
	if v < 0 {
		return 0
	}
	if uint64(v) > uint64(limit) {
		return int(limit)
	}
	return v
}
