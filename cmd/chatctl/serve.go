package main

import (
	"os"
	"os/signal"
	"supachat/internal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var port int
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /inspect, /state and /metrics over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == 0 {
				port = a.config.DebugPort
			}
			a.metrics.MustRegister(collectors.NewGoCollector())

			// The namespace of this widget is loaded so its store shows up in
			// the metrics right away.
			a.store()

			stats := func() map[string]any {
				return map[string]any{
					"Backend":    a.config.StorageBackend,
					"Codec":      a.repository.Codec().Name(),
					"Registered": a.registry.Len(),
					"Time":       time.Now().Format(time.RFC822),
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			handler := internal.NewDebugHandler(a.repository, a.metrics, stats, a.log)
			return internal.StartDebugServer(ctx, port, handler, a.log)
		},
	}
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port, DEBUG_PORT by default")
	return serveCmd
}
