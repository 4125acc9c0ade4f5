package internal

import (
	"context"
	"log/slog"
	"path/filepath"
	"supachat/domain"
	"supachat/errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestOpenRepository_Backends(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		config Config
	}{
		{name: "memory", config: Config{StorageBackend: BackendMemory, StorageCodec: "json"}},
		{name: "badger", config: Config{StorageBackend: BackendBadger, StorageCodec: "proto",
			BadgerFilepath: filepath.Join(dir, "badger")}},
		{name: "sqlite", config: Config{StorageBackend: BackendSQLite, StorageCodec: "json",
			SQLiteFilepath: filepath.Join(dir, "nested", "state.db")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			repository, err := OpenRepository(context.Background(), tt.config, slog.Default())
			req.NoError(err)
			defer repository.Close()

			state := domain.NewChatState()
			state.SessionID = lo.ToPtr("s-1")
			req.NoError(repository.Save("widget-1", state))

			loaded, ok, err := repository.Load("widget-1")
			req.NoError(err)
			req.True(ok)
			req.Equal(state, loaded)
			req.Equal(tt.config.StorageCodec, repository.Codec().Name())
		})
	}
}

func TestOpenRepository_Unknown(t *testing.T) {
	req := require.New(t)

	_, err := OpenRepository(context.Background(), Config{StorageBackend: "tape", StorageCodec: "json"}, slog.Default())
	req.ErrorIs(err, errors.ErrUnknownBackend)

	_, err = OpenRepository(context.Background(), Config{StorageBackend: BackendMemory, StorageCodec: "xml"}, slog.Default())
	req.ErrorIs(err, errors.ErrUnknownCodec)
}
