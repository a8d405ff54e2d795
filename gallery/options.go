package gallery

import "log/slog"

// DefaultListLimit is the number of interactions shown when no limit is set.
const DefaultListLimit = 50

// handlerOptions holds configuration for a gallery Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/_designkit").
	PathPrefix string
	// ListLimit limits the number of interactions shown in the interaction list.
	ListLimit int
	// Logger is used for request errors.
	Logger *slog.Logger
}

func defaultHandlerOptions() handlerOptions {
	return handlerOptions{
		ListLimit: DefaultListLimit,
		Logger:    slog.Default(),
	}
}

// HandlerOption configures a gallery Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// For example, "/_designkit" if mounted at that path.
// This is used for generating correct URLs in the gallery page.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithListLimit limits the number of interactions shown in the interaction list.
// Default is DefaultListLimit.
func WithListLimit(limit int) HandlerOption {
	return func(o *handlerOptions) {
		if limit > 0 {
			o.ListLimit = limit
		}
	}
}

// WithLogger sets the logger for request errors.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
