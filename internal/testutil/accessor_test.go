package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountingAccessor_CountsReads(t *testing.T) {
	acc := NewCountingAccessor()
	rec := map[string]any{"a": 1}

	v, ok := acc.Access(rec, "a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = acc.Access(rec, "b")
	assert.False(t, ok)

	assert.Equal(t, 1, acc.Calls("a"))
	assert.Equal(t, 1, acc.Calls("b"))
	assert.Equal(t, 0, acc.Calls("c"))
	assert.Equal(t, 2, acc.Total())
	assert.Equal(t, []string{"a", "b"}, acc.Order())
}

func TestCountingAccessor_Reset(t *testing.T) {
	acc := NewCountingAccessor()
	lookup := acc.Lookup(map[string]any{"a": 1})
	lookup("a")
	lookup("a")
	assert.Equal(t, 2, acc.Calls("a"))

	acc.Reset()
	assert.Equal(t, 0, acc.Total())
	assert.Empty(t, acc.Order())
}

func TestCountingAccessor_ThreadSafe(t *testing.T) {
	acc := NewCountingAccessor()
	rec := map[string]any{"a": 1}

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				acc.Access(rec, "a")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000, acc.Calls("a"))
}

func TestKeyedRecords(t *testing.T) {
	records := KeyedRecords()
	assert.Equal(t, []string{"map0", "map1", "map2", "map3"}, IDs(records))
	assert.Equal(t, "world", records[2]["key1"])
	assert.NotContains(t, records[2], "key2")
	assert.Equal(t, "3333", records[3]["key3"])
}
