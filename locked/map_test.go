package locked

import (
	"testing"

	"github.com/hupe1980/slotgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMap(t *testing.T) {
	m := New[string]()

	hs := m.AddAll("a", "b", "c")
	require.Len(t, hs, 3)
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get(hs[1])
	require.True(t, ok)
	assert.Equal(t, "b", v)

	assert.True(t, m.Update(hs[1], "B"))
	v, _ = m.Get(hs[1])
	assert.Equal(t, "B", v)

	v, ok = m.Remove(hs[0])
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.False(t, m.Has(hs[0]))

	_, ok = m.Get(hs[0])
	assert.False(t, ok)

	h := m.Add("d")
	assert.NotEqual(t, hs[0], h)
	require.NoError(t, m.Validate())
}

func TestMapViewAndMutate(t *testing.T) {
	m := New[int]()
	m.AddAll(1, 2, 3)

	m.Mutate(func(inner *slotgo.Map[int]) {
		for v := range inner.Values() {
			*v *= 10
		}
	})

	sum := 0
	m.View(func(inner *slotgo.Map[int]) {
		for v := range inner.Values() {
			sum += *v
		}
	})
	assert.Equal(t, 60, sum)
}

func TestMapSnapshotIsIndependent(t *testing.T) {
	m := New[int]()
	h := m.Add(1)

	snap := m.Snapshot()
	m.Remove(h)

	assert.False(t, m.Has(h))
	assert.True(t, snap.Has(h))
}

func TestMapConcurrentAccess(t *testing.T) {
	const (
		writers   = 8
		perWriter = 500
	)

	metrics := &slotgo.BasicMetricsCollector{}
	m := New[int](slotgo.WithMetricsCollector(metrics))

	var g errgroup.Group
	kept := make([][]slotgo.Handle, writers)

	for w := range writers {
		g.Go(func() error {
			for i := range perWriter {
				h := m.Add(w*perWriter + i)
				if i%2 == 0 {
					if _, ok := m.Remove(h); !ok {
						t.Errorf("writer %d: remove of fresh handle %v failed", w, h)
					}
					continue
				}
				kept[w] = append(kept[w], h)
			}
			return nil
		})
	}

	for range 4 {
		g.Go(func() error {
			for range perWriter {
				m.View(func(inner *slotgo.Map[int]) {
					for h := range inner.Keys() {
						if !inner.Has(h) {
							t.Errorf("iterated handle %v does not resolve", h)
						}
					}
				})
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
	require.NoError(t, m.Validate())

	total := 0
	for w, hs := range kept {
		for _, h := range hs {
			v, ok := m.Get(h)
			require.True(t, ok)
			assert.Equal(t, w, v/perWriter)
			total++
		}
	}
	assert.Equal(t, total, m.Len())
	assert.Equal(t, int64(writers*perWriter), metrics.GetStats().AddCount)
}
