package finder

import (
	"math"
	"sync"
)

// Position is an ordered tuple of coordinates, one per configured attribute.
type Position []float64

// Dimensions returns the number of coordinates.
func (p Position) Dimensions() int { return len(p) }

// DistanceTo returns the Euclidean distance between p and q. Missing trailing
// coordinates on the shorter tuple count as 0.
func (p Position) DistanceTo(q Position) float64 {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	var sum float64
	for i := 0; i < n; i++ {
		d := p.at(i) - q.at(i)
		sum += d * d
	}

	return math.Sqrt(sum)
}

func (p Position) at(i int) float64 {
	if i < len(p) {
		return p[i]
	}

	return 0
}

func (p Position) clone() Position {
	return append(Position(nil), p...)
}

// positionCache maps node labels to computed positions. Entries are written
// once and never replaced or evicted; the first writer wins.
type positionCache struct {
	mu      sync.RWMutex
	entries map[string]Position
}

func newPositionCache() *positionCache {
	return &positionCache{entries: make(map[string]Position)}
}

func (c *positionCache) load(node string) (Position, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.entries[node]

	return p, ok
}

// store records p for node unless an entry already exists, and returns the
// entry that ends up cached.
func (c *positionCache) store(node string, p Position) Position {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[node]; ok {
		return existing
	}
	c.entries[node] = p

	return p
}

func (c *positionCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
