//go:build acceptance
// +build acceptance

package acceptance

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/networkteam/designkit"
)

// TestApp is a host application with the designkit gallery mounted.
type TestApp struct {
	Server     *httptest.Server
	GalleryURL string
	Designkit  *designkit.Instance
}

// NewTestApp starts a server with the gallery mounted at /_designkit/.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	dk := designkit.NewWithOptions(designkit.Options{
		InteractionCapacity: 100,
		Logger:              slog.New(slog.DiscardHandler),
	})

	mux := http.NewServeMux()
	mux.Handle("/_designkit/", http.StripPrefix("/_designkit", dk.GalleryHandler("/_designkit")))

	server := httptest.NewServer(mux)

	return &TestApp{
		Server:     server,
		GalleryURL: server.URL + "/_designkit/",
		Designkit:  dk,
	}
}

// Close shuts down the test application and releases resources.
func (ta *TestApp) Close() {
	ta.Designkit.Close()
	ta.Server.Close()
}
