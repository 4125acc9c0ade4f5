//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=../mocks/mock_state_backend.go -package=mocks
package repositories

import "context"

// IStateBackend is a byte-level key/value slot per namespace.
// Read returns (nil, nil) when nothing was ever written for the namespace.
// Implementations must be safe for concurrent use.
type IStateBackend interface {
	Read(ctx context.Context, namespace string) ([]byte, error)
	Write(ctx context.Context, namespace string, data []byte) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}
