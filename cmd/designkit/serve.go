package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/networkteam/designkit"
)

type serveOptions struct {
	addr       string
	pathPrefix string
	capacity   uint64
}

func newServeCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the component gallery over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := rootFlags.logger()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, logger, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":1095", "Address to listen on")
	cmd.Flags().StringVar(&opts.pathPrefix, "path-prefix", "", "Path prefix to mount the gallery at (e.g. /_designkit)")
	cmd.Flags().Uint64Var(&opts.capacity, "capacity", 200, "Number of interactions to keep")

	return cmd
}

func runServe(ctx context.Context, logger *slog.Logger, opts *serveOptions) error {
	dk := designkit.NewWithOptions(designkit.Options{
		InteractionCapacity: opts.capacity,
		Logger:              logger,
	})
	defer dk.Close()

	pathPrefix := strings.TrimSuffix(opts.pathPrefix, "/")

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if pathPrefix == "" {
		mux.Handle("/", dk.GalleryHandler(""))
	} else {
		mux.Handle(pathPrefix+"/", http.StripPrefix(pathPrefix, dk.GalleryHandler(pathPrefix)))
	}

	server := &http.Server{
		Addr:              opts.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return err
	}

	logger.Info("Starting gallery", slog.String("addr", ln.Addr().String()), slog.String("pathPrefix", pathPrefix+"/"))
	if err := serve(ctx, logger, server, ln); err != nil {
		return err
	}
	logger.Info("Gallery stopped")
	return nil
}

const shutdownTimeout = 5 * time.Second

// serve runs server on ln until ctx is done and returns once in-flight
// requests have drained or shutdownTimeout passed.
func serve(ctx context.Context, logger *slog.Logger, server *http.Server, ln net.Listener) error {
	done := make(chan struct{})
	go func() {
		defer close(done)

		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down server", slog.Any("err", err))
		}
	}()

	// Serve returns ErrServerClosed as soon as Shutdown starts
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
