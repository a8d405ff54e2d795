package interaction

import (
	"context"
	"sync"
)

// Notifier fans out items to subscribers. Slow subscribers miss items instead
// of blocking the sender.
type Notifier[T any] struct {
	mu            sync.RWMutex
	subscriptions map[<-chan T]*subscription[T]
	bufferSize    int
	notifyCh      chan T
	closeOnce     sync.Once
	closed        bool
}

// subscription is a subscriber channel with an optional match func. A nil
// match receives every item.
type subscription[T any] struct {
	ch    chan T
	match func(T) bool
}

func (s *subscription[T]) wants(item T) bool {
	return s.match == nil || s.match(item)
}

// NotifierOptions configures a notifier
type NotifierOptions struct {
	// SubscriberBufferSize is the buffer size for each subscriber channel
	SubscriberBufferSize int

	// NotificationBufferSize is the buffer size for the internal notification channel
	NotificationBufferSize int
}

// DefaultNotifierOptions returns default options for a notifier
func DefaultNotifierOptions() NotifierOptions {
	return NotifierOptions{
		SubscriberBufferSize:   32,
		NotificationBufferSize: 256,
	}
}

// NewNotifier creates a new notifier with default options
func NewNotifier[T any]() *Notifier[T] {
	return NewNotifierWithOptions[T](DefaultNotifierOptions())
}

// NewNotifierWithOptions creates a new notifier with specified options
func NewNotifierWithOptions[T any](options NotifierOptions) *Notifier[T] {
	n := &Notifier[T]{
		subscriptions: make(map[<-chan T]*subscription[T]),
		bufferSize:    options.SubscriberBufferSize,
		notifyCh:      make(chan T, options.NotificationBufferSize),
	}

	go n.dispatch()

	return n
}

// Subscribe returns a channel receiving all items notified after the call.
// The subscription ends and the channel is closed when ctx is done.
func (n *Notifier[T]) Subscribe(ctx context.Context) <-chan T {
	return n.SubscribeMatching(ctx, nil)
}

// SubscribeMatching is Subscribe for the items match returns true for. Items
// not matching never take up space in the subscriber buffer.
func (n *Notifier[T]) SubscribeMatching(ctx context.Context, match func(T) bool) <-chan T {
	sub := &subscription[T]{
		ch:    make(chan T, n.bufferSize),
		match: match,
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		close(sub.ch)
		return sub.ch
	}
	n.subscriptions[sub.ch] = sub
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.Unsubscribe(sub.ch)
	}()

	return sub.ch
}

// Unsubscribe removes a subscription and closes its channel.
func (n *Notifier[T]) Unsubscribe(ch <-chan T) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if sub, exists := n.subscriptions[ch]; exists {
		delete(n.subscriptions, ch)
		close(sub.ch)
	}
}

// Notify queues an item for all subscribers. It never blocks; if the queue
// is full the item is dropped.
func (n *Notifier[T]) Notify(item T) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}

	select {
	case n.notifyCh <- item:
	default:
	}
}

// Close closes the notifier and all subscriber channels.
func (n *Notifier[T]) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		defer n.mu.Unlock()

		n.closed = true
		for _, sub := range n.subscriptions {
			close(sub.ch)
		}
		n.subscriptions = nil
		close(n.notifyCh)
	})
}

func (n *Notifier[T]) dispatch() {
	for item := range n.notifyCh {
		n.mu.RLock()
		for _, sub := range n.subscriptions {
			if !sub.wants(item) {
				continue
			}
			select {
			case sub.ch <- item:
			default:
				// Subscriber is full
			}
		}
		n.mu.RUnlock()
	}
}
