package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"supachat/errors"
	"supachat/repositories"
)

// OpenBackend opens the backend selected by STORAGE_BACKEND. The caller closes it.
func OpenBackend(ctx context.Context, config Config, log *slog.Logger) (repositories.IStateBackend, error) {
	var (
		backend repositories.IStateBackend
		err     error
	)
	switch config.StorageBackend {
	case BackendBadger:
		backend, err = openBadger(config.BadgerFilepath, log)
	case BackendSQLite:
		backend, err = openSQLite(config.SQLiteFilepath)
	case BackendRedis:
		ctx, cancel := context.WithTimeout(ctx, config.StorageTimeout)
		defer cancel()
		backend, err = dialRedis(ctx, config.RedisAddr, config.RedisPrefix)
	case BackendMemory:
		backend = repositories.NewMemoryBackend()
	default:
		err = fmt.Errorf("%w: %q", errors.ErrUnknownBackend, config.StorageBackend)
	}
	if err != nil {
		return nil, err
	}
	return backend, nil
}

func openBadger(path string, log *slog.Logger) (repositories.IStateBackend, error) {
	backend, err := repositories.OpenBadgerBackend(path, log)
	if err != nil {
		return nil, err
	}
	return backend, nil
}

func openSQLite(path string) (repositories.IStateBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite directory: %w", err)
	}
	backend, err := repositories.NewSQLiteBackend(path)
	if err != nil {
		return nil, err
	}
	return backend, nil
}

func dialRedis(ctx context.Context, addr, prefix string) (repositories.IStateBackend, error) {
	backend, err := repositories.DialRedisBackend(ctx, addr, prefix)
	if err != nil {
		return nil, err
	}
	return backend, nil
}

// OpenRepository wires the configured backend and codec together.
func OpenRepository(ctx context.Context, config Config, log *slog.Logger) (repositories.StateRepository, error) {
	codec, err := repositories.CodecByName(config.StorageCodec)
	if err != nil {
		return repositories.StateRepository{}, err
	}
	backend, err := OpenBackend(ctx, config, log)
	if err != nil {
		return repositories.StateRepository{}, err
	}
	log.Debug("Storage opened", "backend", config.StorageBackend, "codec", codec.Name())
	return repositories.NewStateRepository(backend, codec, log, config.StorageTimeout), nil
}
