package data

import (
	"sync"
	"time"
)

// IDGenerator hands out positive, strictly increasing record ids.
// Ids stay close to the creation time in milliseconds, but two calls in the
// same millisecond never collide.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator creates an IDGenerator driven by the wall clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Next returns max(now in milliseconds, previous id + 1).
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// NextUnused returns the next id that is not already taken by records.
func NextUnused[T Record](g *IDGenerator, records []T) int64 {
	for {
		id := g.Next()
		if !Contains(records, id) {
			return id
		}
	}
}
