package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicClock_Monotonic(t *testing.T) {
	clock := NewDeterministicClock()
	assert.Equal(t, int64(0), clock.Current())

	assert.Equal(t, int64(1), clock.Next())
	assert.Equal(t, int64(2), clock.Next())
	assert.Equal(t, int64(2), clock.Current())
}

func TestDeterministicClock_Reset(t *testing.T) {
	clock := NewDeterministicClock()
	clock.Next()
	clock.Next()

	clock.Reset()

	assert.Equal(t, int64(0), clock.Current())
	assert.Equal(t, int64(1), clock.Next())
}

func TestDeterministicClock_Concurrent(t *testing.T) {
	clock := NewDeterministicClock()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				clock.Next()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(400), clock.Current())
}
