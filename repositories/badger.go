package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const badgerPrefix = "chat:"

type BadgerBackend struct {
	db    *badger.DB
	log   *slog.Logger
	owned bool
}

// NewBadgerBackend wraps an already opened database. The caller keeps
// ownership and closes it.
func NewBadgerBackend(db *badger.DB, log *slog.Logger) *BadgerBackend {
	return &BadgerBackend{db: db, log: log}
}

// OpenBadgerBackend opens (or creates) a database at path; Close releases it.
func OpenBadgerBackend(path string, log *slog.Logger) (*BadgerBackend, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("badger open %s: %w", path, err)
	}
	return &BadgerBackend{db: db, log: log, owned: true}, nil
}

// Read fetches the record stored under "chat:{namespace}".
func (b *BadgerBackend) Read(_ context.Context, namespace string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(namespace))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("badger read %q: %w", namespace, err)
	}
	return data, nil
}

// Write replaces the whole record of a namespace in a single transaction.
func (b *BadgerBackend) Write(_ context.Context, namespace string, data []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(namespace), data)
	})
	if err != nil {
		return fmt.Errorf("badger write %q: %w", namespace, err)
	}
	return nil
}

// Keys lists every namespace with a persisted record, using a key-only prefix scan.
func (b *BadgerBackend) Keys(_ context.Context) ([]string, error) {
	var keys []string
	err := b.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(badgerPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, strings.TrimPrefix(string(it.Item().Key()), badgerPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger scan: %w", err)
	}
	return keys, nil
}

func (b *BadgerBackend) Close() error {
	if !b.owned {
		return nil
	}
	b.log.Debug("Closing BadgerDB...")
	return b.db.Close()
}

func badgerKey(namespace string) []byte {
	return []byte(badgerPrefix + namespace)
}
