package internal

import (
	"context"
	"embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"supachat/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

// InspectSource is the persisted view the debug surface reads from.
type InspectSource interface {
	Namespaces() ([]string, error)
	Load(namespace string) (domain.ChatState, bool, error)
}

type InspectRow struct {
	Namespace   string
	SessionID   string
	User        string
	Room        string
	Messages    int
	Unread      int
	InputLocked bool
	Detail      string
}

type StatsProvider func() map[string]any

type PageData struct {
	Items []InspectRow
	Stats map[string]any
}

// InspectRows loads every persisted namespace. A record that cannot be decoded
// still gets a row, with the error as detail.
func InspectRows(source InspectSource) ([]InspectRow, error) {
	namespaces, err := source.Namespaces()
	if err != nil {
		return nil, err
	}
	return lo.Map(namespaces, func(namespace string, _ int) InspectRow {
		state, _, err := source.Load(namespace)
		if err != nil {
			return InspectRow{Namespace: namespace, Detail: err.Error()}
		}
		return NewInspectRow(namespace, state)
	}), nil
}

func NewInspectRow(namespace string, state domain.ChatState) InspectRow {
	row := InspectRow{
		Namespace:   namespace,
		SessionID:   "-",
		User:        "-",
		Room:        "-",
		Messages:    len(state.Messages),
		Unread:      state.UnreadCount,
		InputLocked: state.InputLocked,
	}
	if state.SessionID != nil {
		row.SessionID = fmt.Sprintf("%q", *state.SessionID)
	}
	if state.User != nil {
		row.User = state.User.ID
	}
	if state.CurrentRoom != nil {
		row.Room = state.CurrentRoom.ID
	}
	if n := len(state.Messages); n > 0 {
		row.Detail = truncate(state.Messages[n-1].Content, 40)
	}
	return row
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

// NewDebugHandler serves /inspect (HTML), /state?key= (JSON record) and
// /metrics from gatherer.
func NewDebugHandler(source InspectSource, gatherer prometheus.Gatherer, statsProvider StatsProvider, log *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		rows, err := InspectRows(source)
		if err != nil {
			log.Error("Inspect failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		data := PageData{Items: rows, Stats: make(map[string]any)}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})

	mux.HandleFunc("/state", func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("key")
		if key == "" {
			http.Error(w, "missing key", http.StatusBadRequest)
			return
		}
		state, ok, err := source.Load(key)
		switch {
		case err != nil:
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		case !ok:
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(state)
	})

	if gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

// StartDebugServer listens on port until ctx is cancelled.
func StartDebugServer(ctx context.Context, port int, handler http.Handler, log *slog.Logger) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("Debug server listening", "url", fmt.Sprintf("http://localhost:%d/inspect", port))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
