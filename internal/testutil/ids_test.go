package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialIDGenerator_Sequence(t *testing.T) {
	gen := NewSequentialIDGenerator("run")

	assert.Equal(t, "run-0001", gen.Generate())
	assert.Equal(t, "run-0002", gen.Generate())
	assert.Equal(t, "run-0003", gen.Generate())
}

func TestSequentialIDGenerator_DefaultPrefix(t *testing.T) {
	gen := NewSequentialIDGenerator("")

	assert.Equal(t, "test-run-0001", gen.Generate())
}

func TestSequentialIDGenerator_Reset(t *testing.T) {
	gen := NewSequentialIDGenerator("run")
	gen.Generate()
	gen.Generate()

	gen.Reset()

	assert.Equal(t, "run-0001", gen.Generate())
}

func TestSequentialIDGenerator_ThreadSafe(t *testing.T) {
	gen := NewSequentialIDGenerator("run")

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[string]bool)
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := gen.Generate()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Every ID is unique
	assert.Len(t, seen, 1000)
}
