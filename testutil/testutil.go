package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values in [0,maxVal).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, maxVal int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(maxVal)
	}
	return out
}

// Model is a plain-slice reference implementation of the vector operations.
// Positional methods panic on out-of-range indices like the slice
// operations they wrap.
type Model[T any] struct {
	items []T
}

// Len returns the number of items.
func (m *Model[T]) Len() int { return len(m.items) }

// Items returns a copy of the items.
func (m *Model[T]) Items() []T { return slices.Clone(m.items) }

// Push appends v.
func (m *Model[T]) Push(v T) { m.items = append(m.items, v) }

// Pop removes the last item. It returns false if the model is empty.
func (m *Model[T]) Pop() (T, bool) {
	if len(m.items) == 0 {
		var zero T
		return zero, false
	}
	v := m.items[len(m.items)-1]
	m.items = m.items[:len(m.items)-1]
	return v, true
}

// Get returns the item at i, or false if i is out of range.
func (m *Model[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[i], true
}

// Insert inserts v at i.
func (m *Model[T]) Insert(i int, v T) { m.items = slices.Insert(m.items, i, v) }

// Remove removes and returns the item at i.
func (m *Model[T]) Remove(i int) T {
	v := m.items[i]
	m.items = slices.Delete(m.items, i, i+1)
	return v
}
