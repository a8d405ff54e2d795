package gallery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/a-h/templ"

	"github.com/networkteam/designkit/components"
	"github.com/networkteam/designkit/interaction"
)

// Handler serves the component gallery. It plays the host application of the
// components: it owns the selected survey option and forwards browser events
// posted by the gallery page to the component callbacks.
type Handler struct {
	interactions *interaction.Log
	options      handlerOptions

	selectedMu sync.RWMutex
	selectedID string

	mux *http.ServeMux
}

// NewHandler creates a gallery handler recording forwarded callbacks in interactions.
func NewHandler(interactions *interaction.Log, opts ...HandlerOption) *Handler {
	options := defaultHandlerOptions()
	for _, opt := range opts {
		opt(&options)
	}

	mux := http.NewServeMux()
	handler := &Handler{
		interactions: interactions,
		options:      options,
		mux:          mux,
	}

	mux.HandleFunc("GET /{$}", handler.root)
	mux.HandleFunc("GET /component/{name}", handler.getComponent)
	mux.HandleFunc("POST /interact", handler.postInteract)
	mux.HandleFunc("GET /interactions", handler.getInteractions)
	mux.HandleFunc("GET /interactions-sse", handler.getInteractionsSSE)
	mux.HandleFunc("GET /source/{name}", handler.getSource)

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) selectedOption() string {
	h.selectedMu.RLock()
	defer h.selectedMu.RUnlock()
	return h.selectedID
}

func (h *Handler) setSelectedOption(optionID string) {
	h.selectedMu.Lock()
	defer h.selectedMu.Unlock()
	h.selectedID = optionID
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	instances := h.instances()

	entries := make([]pageEntry, 0, len(instances))
	for _, name := range Instances() {
		entries = append(entries, pageEntry{name: name, instance: instances[name]})
	}

	templ.Handler(page(pageProps{
		PathPrefix:   h.options.PathPrefix,
		Entries:      entries,
		Interactions: h.interactions.Recent(h.options.ListLimit),
	})).ServeHTTP(w, r)
}

func (h *Handler) lookup(w http.ResponseWriter, name string) (instance, bool) {
	inst, ok := h.instances()[name]
	if !ok {
		http.Error(w, "Unknown component", http.StatusNotFound)
	}
	return inst, ok
}

func (h *Handler) getComponent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	inst, ok := h.lookup(w, name)
	if !ok {
		return
	}

	templ.Handler(fragment(name, inst)).ServeHTTP(w, r)
}

func (h *Handler) postInteract(w http.ResponseWriter, r *http.Request) {
	logger := h.options.Logger.With("component", "gallery", "handler", "/interact")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	e := browserEvent{
		Instance:      r.PostForm.Get("component"),
		Event:         r.PostForm.Get("event"),
		OptionID:      r.PostForm.Get("option"),
		Target:        r.PostForm.Get("target"),
		RelatedTarget: r.PostForm.Get("related"),
		ClientX:       parseCoordinate(r.PostForm.Get("x")),
		ClientY:       parseCoordinate(r.PostForm.Get("y")),
	}

	inst, ok := h.instances()[e.Instance]
	if !ok {
		http.Error(w, errUnknownInstance.Error(), http.StatusBadRequest)
		return
	}

	err := inst.dispatch(r.Context(), e)
	switch {
	case errors.Is(err, errUnsupportedEvent):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, components.ErrOptionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		logger.ErrorContext(r.Context(), "Failed to dispatch event", slog.Group("event", slog.String("component", e.Instance), slog.String("type", e.Event)), slog.Any("err", err))
		http.Error(w, "Failed to dispatch event", http.StatusInternalServerError)
		return
	}

	// Only clicks can change what a component renders
	if e.Event != EventClick {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	templ.Handler(fragment(e.Instance, inst)).ServeHTTP(w, r)
}

func (h *Handler) getInteractions(w http.ResponseWriter, r *http.Request) {
	templ.Handler(interactionList(h.interactions.Recent(h.options.ListLimit))).ServeHTTP(w, r)
}

// getInteractionsSSE streams recorded interactions as server-sent events. The
// repeatable "component" query parameter limits the stream to the given
// component instances.
func (h *Handler) getInteractionsSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // For NGINX proxy

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ch := h.interactions.SubscribeFiltered(ctx, interaction.ForComponents(r.URL.Query()["component"]...))

	fmt.Fprintf(w, "event: keepalive\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case i, ok := <-ch:
			if !ok {
				return
			}

			fmt.Fprintf(w, "event: interaction\n")
			fmt.Fprintf(w, "data: ")
			if err := interactionListItem(i).Render(ctx, w); err != nil {
				return
			}
			fmt.Fprintf(w, "\n\n")

			flusher.Flush()
		}
	}
}

func (h *Handler) getSource(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	inst, ok := h.lookup(w, name)
	if !ok {
		return
	}

	templ.Handler(sourceView(name, inst.render())).ServeHTTP(w, r)
}
