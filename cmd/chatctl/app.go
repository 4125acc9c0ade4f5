package main

import (
	"fmt"
	"log/slog"
	"supachat/internal"
	"supachat/observability"
	"supachat/repositories"
	"supachat/runtime"
	"supachat/session"
	"supachat/store"

	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once the configuration is loaded.
type app struct {
	config     internal.Config
	log        *slog.Logger
	repository repositories.StateRepository
	metrics    *prometheus.Registry
	registry   *runtime.Registry
	opened     bool
	key        string
}

func (a *app) open(cmd *cobra.Command) error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	a.config = config
	a.log = logs.GetLoggerFromString(config.LogLevel)

	a.repository, err = internal.OpenRepository(cmd.Context(), config, a.log)
	if err != nil {
		return fmt.Errorf("storage opening failed: %w", err)
	}
	a.opened = true

	a.metrics = prometheus.NewRegistry()
	observer := observability.MultiObserver{
		observability.NewLogObserver(a.log),
		observability.NewPrometheusObserver(observability.WithRegistry(a.metrics)),
	}
	a.registry = runtime.NewPersistentRegistry(a.log, a.repository, observer,
		store.WithMaxNotifyDepth(config.MaxNotifyDepth))
	return nil
}

func (a *app) close() error {
	if !a.opened {
		return nil
	}
	a.opened = false
	a.log.Debug("Closing storage...")
	return a.repository.Close()
}

// namespace is the --key flag, or LOCAL_STORAGE_KEY when the flag is empty.
func (a *app) namespace() string {
	if a.key != "" {
		return a.key
	}
	return a.config.LocalStorageKey
}

func (a *app) store() *store.ChatStore {
	return a.registry.GetOrCreate(a.namespace())
}

func (a *app) session() (*session.Manager, error) {
	return session.Open(a.registry, session.Config{LocalStorageKey: a.namespace()}, session.WithLogger(a.log))
}
