package kernel

import "sync"

// Cache memoizes one Kernel per distinct Params tuple.
// The zero value is ready to use and safe for concurrent callers.
type Cache struct {
	mu      sync.Mutex
	kernels map[Params]*Kernel
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{kernels: make(map[Params]*Kernel)}
}

// Get returns the cached kernel for p, building it on first use.
// Invalid parameters are never cached; every call reports the same error.
func (c *Cache) Get(p Params) (*Kernel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if k, ok := c.kernels[p]; ok {
		return k, nil
	}
	k, err := Build(p)
	if err != nil {
		return nil, err
	}
	if c.kernels == nil {
		c.kernels = make(map[Params]*Kernel)
	}
	c.kernels[p] = k

	return k, nil
}

// Len returns the number of cached kernels.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.kernels)
}

// Reset drops every cached kernel.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.kernels = make(map[Params]*Kernel)
}
