package repositories

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// runBackendContract checks the behaviour every IStateBackend must share.
func runBackendContract(t *testing.T, backend IStateBackend) {
	ctx := context.Background()

	t.Run("absent namespace reads as nil", func(t *testing.T) {
		req := require.New(t)
		data, err := backend.Read(ctx, "never-written")
		req.NoError(err)
		req.Nil(data)
	})

	t.Run("write then read returns the record", func(t *testing.T) {
		req := require.New(t)
		req.NoError(backend.Write(ctx, "widget-1", []byte(`{"unreadCount":1}`)))
		data, err := backend.Read(ctx, "widget-1")
		req.NoError(err)
		req.Equal([]byte(`{"unreadCount":1}`), data)
	})

	t.Run("write replaces the whole record", func(t *testing.T) {
		req := require.New(t)
		req.NoError(backend.Write(ctx, "widget-2", []byte("first")))
		req.NoError(backend.Write(ctx, "widget-2", []byte("second")))
		data, err := backend.Read(ctx, "widget-2")
		req.NoError(err)
		req.Equal([]byte("second"), data)
	})

	t.Run("keys lists written namespaces", func(t *testing.T) {
		req := require.New(t)
		keys, err := backend.Keys(ctx)
		req.NoError(err)
		req.Subset(keys, []string{"widget-1", "widget-2"})
		req.NotContains(keys, "never-written")
	})
}

func TestMemoryBackend_Contract(t *testing.T) {
	backend := NewMemoryBackend()
	runBackendContract(t, backend)
}

func TestMemoryBackend_CopiesBytes(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	backend := NewMemoryBackend()

	data := []byte("abc")
	req.NoError(backend.Write(ctx, "k", data))
	data[0] = 'z'

	stored, err := backend.Read(ctx, "k")
	req.NoError(err)
	req.Equal([]byte("abc"), stored)

	stored[1] = 'z'
	again, err := backend.Read(ctx, "k")
	req.NoError(err)
	req.Equal([]byte("abc"), again)
}

func TestMemoryBackend_Closed(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	backend := NewMemoryBackend()
	req.NoError(backend.Close())

	_, err := backend.Read(ctx, "k")
	req.Error(err)
	req.Error(backend.Write(ctx, "k", []byte("v")))
}

func TestBadgerBackend_Contract(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	runBackendContract(t, NewBadgerBackend(db, slog.Default()))
}

func TestBadgerBackend_SurvivesReopen(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	backend, err := OpenBadgerBackend(dir, slog.Default())
	req.NoError(err)
	req.NoError(backend.Write(ctx, "widget-1", []byte("persisted")))
	req.NoError(backend.Close())

	reopened, err := OpenBadgerBackend(dir, slog.Default())
	req.NoError(err)
	defer reopened.Close()
	data, err := reopened.Read(ctx, "widget-1")
	req.NoError(err)
	req.Equal([]byte("persisted"), data)
}

func TestSQLiteBackend_Contract(t *testing.T) {
	req := require.New(t)
	backend, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "chat.db"))
	req.NoError(err)
	defer backend.Close()

	runBackendContract(t, backend)
}

func TestRedisBackend_Contract(t *testing.T) {
	addr := os.Getenv("CHATSTORE_REDIS_ADDR")
	if addr == "" {
		t.Skip("CHATSTORE_REDIS_ADDR not set")
	}
	req := require.New(t)
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	req.NoError(client.Ping(context.Background()).Err())

	prefix := "supachat-test:" + uuid.NewString() + ":"
	runBackendContract(t, NewRedisBackend(client, prefix))
}
