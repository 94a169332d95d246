package engine

import (
	"sync"

	"github.com/google/uuid"
)

// RevisionGenerator generates revision tokens for saved tournament states.
// Implemented by UUIDv7Generator (production) and FixedGenerator (tests).
type RevisionGenerator interface {
	Next() string
}

// UUIDv7Generator generates time-sortable UUIDv7 revision tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, making revisions
// sortable by creation time, which is helpful when inspecting a database by
// hand.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Next creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (g UUIDv7Generator) Next() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined revision tokens for testing. This
// enables deterministic assertions on saved state.
type FixedGenerator struct {
	mu     sync.Mutex
	tokens []string
	idx    int
}

// NewFixedGenerator creates a generator that returns tokens in order.
//
// Example:
//
//	gen := NewFixedGenerator("rev-1", "rev-2")
//	gen.Next() // "rev-1"
//	gen.Next() // "rev-2"
//	gen.Next() // panic: all tokens exhausted
func NewFixedGenerator(tokens ...string) *FixedGenerator {
	return &FixedGenerator{tokens: tokens}
}

// Next returns the next predetermined token.
// Panics if all tokens have been consumed; a test that draws more revisions
// than it declared is a test bug worth failing loudly.
func (g *FixedGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.tokens) {
		panic("FixedGenerator: all tokens exhausted")
	}
	tok := g.tokens[g.idx]
	g.idx++
	return tok
}
