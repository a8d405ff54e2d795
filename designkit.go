package designkit

import (
	"log/slog"
	"net/http"

	"github.com/networkteam/designkit/gallery"
	"github.com/networkteam/designkit/interaction"
)

type Instance struct {
	interactions *interaction.Log
	logger       *slog.Logger
}

type Options struct {
	// InteractionCapacity is the maximum number of forwarded interactions to keep.
	// Default: 0, will use interaction.DefaultCapacity
	InteractionCapacity uint64
	// InteractionOptions are the options for the interaction log.
	// Default: nil, will use interaction.DefaultLogOptions()
	InteractionOptions *interaction.LogOptions

	// Logger is used by the gallery and the interaction log.
	// Default: nil, will use slog.Default()
	Logger *slog.Logger
}

// New creates a new designkit instance with default options.
func New() *Instance {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new designkit instance with the specified options.
// Default options are the zero value of Options.
func NewWithOptions(options Options) *Instance {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logOptions := interaction.DefaultLogOptions()
	if options.InteractionOptions != nil {
		logOptions = *options.InteractionOptions
	}
	if logOptions.Logger == nil {
		logOptions.Logger = logger
	}

	return &Instance{
		interactions: interaction.NewLogWithOptions(options.InteractionCapacity, logOptions),
		logger:       logger,
	}
}

// Interactions returns the log of callbacks forwarded by gallery components.
func (i *Instance) Interactions() *interaction.Log {
	return i.interactions
}

// GalleryHandler returns the component gallery. pathPrefix is where the
// handler is mounted (e.g. "/_designkit"), empty if mounted at the root.
func (i *Instance) GalleryHandler(pathPrefix string, opts ...gallery.HandlerOption) http.Handler {
	opts = append([]gallery.HandlerOption{
		gallery.WithPathPrefix(pathPrefix),
		gallery.WithLogger(i.logger),
	}, opts...)
	return gallery.NewHandler(i.interactions, opts...)
}

func (i *Instance) Close() {
	i.interactions.Close()
}
