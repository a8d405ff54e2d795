package interaction

import "sync"

// RingBuffer keeps the most recent entries up to a fixed capacity. It is safe
// for concurrent use.
type RingBuffer[T any] struct {
	mu      sync.RWMutex
	entries []T
	// written counts all entries ever added, the next write goes to written % cap
	written uint64
}

// NewRingBuffer creates a ring buffer holding at most capacity entries.
func NewRingBuffer[T any](capacity uint64) *RingBuffer[T] {
	if capacity == 0 {
		panic("capacity must be greater than 0")
	}

	return &RingBuffer[T]{
		entries: make([]T, capacity),
	}
}

// Add appends an entry, overwriting the oldest one when full.
func (rb *RingBuffer[T]) Add(entry T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.entries[rb.written%rb.Capacity()] = entry
	rb.written++
}

// Last returns up to n of the most recent entries, oldest first.
func (rb *RingBuffer[T]) Last(n uint64) []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	count := min(n, rb.len())
	result := make([]T, count)

	start := rb.written - count
	for i := uint64(0); i < count; i++ {
		result[i] = rb.entries[(start+i)%rb.Capacity()]
	}

	return result
}

// Len returns the number of entries currently held.
func (rb *RingBuffer[T]) Len() uint64 {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.len()
}

func (rb *RingBuffer[T]) len() uint64 {
	return min(rb.written, rb.Capacity())
}

// Capacity returns the maximum number of entries.
func (rb *RingBuffer[T]) Capacity() uint64 {
	return uint64(len(rb.entries))
}
