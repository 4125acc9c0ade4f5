package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisPrefix = "supachat:"

// RedisBackend shares namespaces between processes through plain string keys
// "{prefix}{namespace}" without expiration.
type RedisBackend struct {
	client redis.UniversalClient
	prefix string
	owned  bool
}

// NewRedisBackend wraps a client the caller keeps ownership of.
func NewRedisBackend(client redis.UniversalClient, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisBackend{client: client, prefix: prefix}
}

// DialRedisBackend creates its own client for addr; Close releases it.
func DialRedisBackend(ctx context.Context, addr, prefix string) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	b := NewRedisBackend(client, prefix)
	b.owned = true
	return b, nil
}

func (r *RedisBackend) key(namespace string) string {
	return r.prefix + namespace
}

func (r *RedisBackend) Read(ctx context.Context, namespace string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(namespace)).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis read %q: %w", namespace, err)
	}
	return data, nil
}

func (r *RedisBackend) Write(ctx context.Context, namespace string, data []byte) error {
	if err := r.client.Set(ctx, r.key(namespace), data, 0).Err(); err != nil {
		return fmt.Errorf("redis write %q: %w", namespace, err)
	}
	return nil
}

// Keys walks the keyspace with SCAN, never KEYS, so large instances are not blocked.
func (r *RedisBackend) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	it := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	for it.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(it.Val(), r.prefix))
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	return keys, nil
}

func (r *RedisBackend) Close() error {
	if !r.owned {
		return nil
	}
	return r.client.Close()
}
