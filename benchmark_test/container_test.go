package benchmark_test

import (
	"testing"

	"github.com/hupe1980/slotgo"
	"github.com/stretchr/testify/require"
)

// TestChurnKeepsSlotTableBounded guards the property the churn benchmarks rely on.
func TestChurnKeepsSlotTableBounded(t *testing.T) {
	m := slotgo.New[particle]()
	hs := make([]slotgo.Handle, 100)
	for i := range hs {
		hs[i] = m.Add(particle{})
	}

	for i := range 10_000 {
		k := (i * 7919) % len(hs)
		_, ok := m.Remove(hs[k])
		require.True(t, ok)
		hs[k] = m.Add(particle{})
	}

	require.Equal(t, 100, m.Slots())
	require.Equal(t, 100, m.Len())
	require.NoError(t, m.Validate())
}
