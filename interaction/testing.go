package interaction

import (
	"context"
	"sync"
	"testing"
	"time"
)

// Collector gathers items of a subscription for assertions in tests.
type Collector[T any] struct {
	t       testing.TB
	cancel  context.CancelFunc
	timeout time.Duration

	mu    sync.Mutex
	items []T
}

// Collect subscribes and gathers items in the background until Wait or Stop.
func Collect[T any](t testing.TB, subscribe func(context.Context) <-chan T) *Collector[T] {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	ch := subscribe(ctx)

	c := &Collector[T]{
		t:       t,
		cancel:  cancel,
		timeout: time.Second,
	}

	go func() {
		for item := range ch {
			c.mu.Lock()
			c.items = append(c.items, item)
			c.mu.Unlock()
		}
	}()

	return c
}

// Wait blocks until at least n items arrived and returns them. The test fails
// after a timeout.
func (c *Collector[T]) Wait(n int) []T {
	c.t.Helper()
	defer c.cancel()

	deadline := time.Now().Add(c.timeout)
	for time.Now().Before(deadline) {
		if items := c.snapshot(); len(items) >= n {
			return items
		}
		time.Sleep(time.Millisecond)
	}

	c.t.Fatalf("timeout waiting for %d items, got %d", n, len(c.snapshot()))
	return nil
}

// Stop ends the subscription and returns what was gathered so far.
func (c *Collector[T]) Stop() []T {
	c.cancel()
	return c.snapshot()
}

func (c *Collector[T]) snapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}
