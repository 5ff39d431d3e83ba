package testutil

import "sync"

// CountingAccessor reads map records and counts every property access.
//
// It is used to observe evaluation order and short-circuiting: a property
// that was never read has a zero count.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type CountingAccessor struct {
	mu    sync.Mutex
	calls map[string]int
	order []string
}

// NewCountingAccessor creates an accessor with no recorded calls.
func NewCountingAccessor() *CountingAccessor {
	return &CountingAccessor{calls: make(map[string]int)}
}

// Access returns record[property] and records the call.
func (c *CountingAccessor) Access(record map[string]any, property string) (any, bool) {
	c.mu.Lock()
	c.calls[property]++
	c.order = append(c.order, property)
	c.mu.Unlock()

	v, ok := record[property]
	return v, ok
}

// Lookup binds the accessor to one record.
func (c *CountingAccessor) Lookup(record map[string]any) func(string) (any, bool) {
	return func(property string) (any, bool) {
		return c.Access(record, property)
	}
}

// Calls returns how often property was read.
func (c *CountingAccessor) Calls(property string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[property]
}

// Total returns the number of reads across all properties.
func (c *CountingAccessor) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Order returns the properties in the order they were read.
func (c *CountingAccessor) Order() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.order...)
}

// Reset clears all recorded calls.
func (c *CountingAccessor) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = make(map[string]int)
	c.order = nil
}
