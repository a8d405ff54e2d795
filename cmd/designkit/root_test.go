package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootFlags_Logger(t *testing.T) {
	for _, level := range []string{"debug", "info", "WARN", "error"} {
		logger, err := (&rootFlags{logLevel: level}).logger()
		require.NoError(t, err, level)
		assert.NotNil(t, logger)
	}

	_, err := (&rootFlags{logLevel: "chatty"}).logger()
	assert.Error(t, err)
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"serve", "extra"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	assert.Error(t, cmd.Execute())
}

func TestServeCmd_Flags(t *testing.T) {
	cmd := newServeCmd(&rootFlags{logLevel: "info"})

	addr := cmd.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, ":1095", addr.DefValue)

	capacity := cmd.Flags().Lookup("capacity")
	require.NotNil(t, capacity)
	assert.Equal(t, "200", capacity.DefValue)
}

func TestServe_DrainsInFlightRequests(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(entered)
			<-release
			_, _ = io.WriteString(w, "done")
		}),
		ReadHeaderTimeout: time.Second,
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serve(ctx, logger, server, ln)
	}()

	type result struct {
		body string
		err  error
	}
	responses := make(chan result, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			responses <- result{err: err}
			return
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		responses <- result{body: string(body), err: err}
	}()

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("request did not reach the handler")
	}

	cancel()

	select {
	case err := <-serveErr:
		t.Fatalf("serve returned before the request finished: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)

	select {
	case err := <-serveErr:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after draining")
	}

	res := <-responses
	require.NoError(t, res.err)
	assert.Equal(t, "done", res.body)
}
