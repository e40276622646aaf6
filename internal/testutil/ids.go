package testutil

import "fmt"

// SequentialIDGenerator generates predictable IDs: prefix-0001,
// prefix-0002, ...
//
// It stands in for UUIDv7 run IDs so that ledgers and golden reports are
// byte-identical across test runs.
//
// Thread-safety: safe for concurrent use; numbering comes from a
// DeterministicClock.
type SequentialIDGenerator struct {
	prefix string
	clock  *DeterministicClock
}

// NewSequentialIDGenerator creates a generator. If prefix is empty,
// "test-run" is used.
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	if prefix == "" {
		prefix = "test-run"
	}
	return &SequentialIDGenerator{prefix: prefix, clock: NewDeterministicClock()}
}

// Generate returns the next ID.
func (g *SequentialIDGenerator) Generate() string {
	return fmt.Sprintf("%s-%04d", g.prefix, g.clock.Next())
}

// Reset restarts numbering at 1.
func (g *SequentialIDGenerator) Reset() {
	g.clock.Reset()
}
