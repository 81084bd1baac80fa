package kernel_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/costmap/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCache_ReusesKernel checks one kernel per distinct tuple.
func TestCache_ReusesKernel(t *testing.T) {
	c := kernel.NewCache()
	p := scenarioParams()

	k1, err := c.Get(p)
	require.NoError(t, err)
	k2, err := c.Get(p)
	require.NoError(t, err)
	assert.Same(t, k1, k2)
	assert.Equal(t, 1, c.Len())

	p.Resolution = 0.5
	k3, err := c.Get(p)
	require.NoError(t, err)
	assert.NotSame(t, k1, k3)
	assert.Equal(t, 2, c.Len())

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

// TestCache_InvalidNotStored ensures failures are not memoized.
func TestCache_InvalidNotStored(t *testing.T) {
	var c kernel.Cache
	p := scenarioParams()
	p.Resolution = 0
	_, err := c.Get(p)
	require.ErrorIs(t, err, kernel.ErrInvalidParameter)
	assert.Equal(t, 0, c.Len())
}

// TestCache_Concurrent hammers Get from several goroutines.
func TestCache_Concurrent(t *testing.T) {
	c := kernel.NewCache()
	p := kernel.DefaultParams()
	var wg sync.WaitGroup
	got := make([]*kernel.Kernel, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			k, err := c.Get(p)
			if err == nil {
				got[i] = k
			}
		}(i)
	}
	wg.Wait()
	for i := range got {
		require.NotNil(t, got[i])
		assert.Same(t, got[0], got[i])
	}
}
