package interaction

import (
	"context"
	"log/slog"
	"slices"
)

// Log keeps recent interactions and notifies subscribers about new ones.
type Log struct {
	buffer   *RingBuffer[Interaction]
	notifier *Notifier[Interaction]
	logger   *slog.Logger
}

type LogOptions struct {
	// NotifierOptions are options for notification about new interactions.
	NotifierOptions *NotifierOptions

	// Logger receives a debug record per interaction.
	// Default: slog.Default()
	Logger *slog.Logger
}

// DefaultLogOptions returns the default options of a Log.
func DefaultLogOptions() LogOptions {
	return LogOptions{}
}

// DefaultCapacity is used by NewLog for a zero capacity.
const DefaultCapacity = 200

// NewLog creates a Log with default options.
func NewLog(capacity uint64) *Log {
	return NewLogWithOptions(capacity, DefaultLogOptions())
}

// NewLogWithOptions creates a Log keeping at most capacity interactions.
func NewLogWithOptions(capacity uint64, options LogOptions) *Log {
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	notifierOptions := DefaultNotifierOptions()
	if options.NotifierOptions != nil {
		notifierOptions = *options.NotifierOptions
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{
		buffer:   NewRingBuffer[Interaction](capacity),
		notifier: NewNotifierWithOptions[Interaction](notifierOptions),
		logger:   logger.With("component", "interaction"),
	}
}

// Record stores an interaction and notifies subscribers.
func (l *Log) Record(ctx context.Context, i Interaction) {
	l.buffer.Add(i)
	l.notifier.Notify(i)

	l.logger.DebugContext(ctx, "Forwarded interaction",
		slog.String("id", i.ID.String()),
		slog.Group("interaction",
			slog.String("component", i.Component),
			slog.String("event", i.Event),
			slog.String("option", i.OptionID),
			slog.String("callback", i.Callback),
		),
	)
}

// Recent returns up to n interactions, newest first.
func (l *Log) Recent(n int) []Interaction {
	if n <= 0 {
		return []Interaction{}
	}
	recent := l.buffer.Last(uint64(n))
	slices.Reverse(recent)
	return recent
}

// Len returns the number of interactions held.
func (l *Log) Len() int {
	return int(l.buffer.Len())
}

// Subscribe returns a channel that receives new interactions until ctx is done.
func (l *Log) Subscribe(ctx context.Context) <-chan Interaction {
	return l.notifier.Subscribe(ctx)
}

// SubscribeFiltered is Subscribe for the interactions filter matches. A nil
// filter matches all of them.
func (l *Log) SubscribeFiltered(ctx context.Context, filter Filter) <-chan Interaction {
	return l.notifier.SubscribeMatching(ctx, filter)
}

// Close releases resources used by the log.
func (l *Log) Close() {
	l.notifier.Close()
}
