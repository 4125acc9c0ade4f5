//go:generate go run go.uber.org/mock/mockgen -source=state.go -destination=../mocks/mock_state_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"supachat/domain"
	"supachat/errors"
	"time"
)

const DefaultTimeout = 2 * time.Second

// IChatStateRepository is the load/save capability a chat store persists through.
// Load returns ok=false when the namespace has no record.
type IChatStateRepository interface {
	Load(namespace string) (domain.ChatState, bool, error)
	Save(namespace string, state domain.ChatState) error
}

// StateRepository binds a byte backend to a codec. Decoded records are
// validated; anything that fails is reported as errors.ErrMalformedState.
// A backend that cannot be read is reported as errors.ErrBackendRead.
type StateRepository struct {
	backend IStateBackend
	codec   Codec
	log     *slog.Logger
	timeout time.Duration
}

func NewStateRepository(backend IStateBackend, codec Codec, log *slog.Logger, timeout time.Duration) StateRepository {
	if codec == nil {
		codec = JSONCodec{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return StateRepository{backend: backend, codec: codec, log: log, timeout: timeout}
}

func (r StateRepository) Load(namespace string) (domain.ChatState, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	data, err := r.backend.Read(ctx, namespace)
	if err != nil {
		return domain.ChatState{}, false, fmt.Errorf("%w: %w", errors.ErrBackendRead, err)
	}
	if data == nil {
		return domain.ChatState{}, false, nil
	}
	state, err := r.codec.Unmarshal(data)
	if err != nil {
		return domain.ChatState{}, false, fmt.Errorf("%w: %s decode: %w", errors.ErrMalformedState, r.codec.Name(), err)
	}
	if err := state.Validate(); err != nil {
		return domain.ChatState{}, false, fmt.Errorf("%w: %w", errors.ErrMalformedState, err)
	}
	r.log.Debug("Loaded chat state", "namespace", namespace, "messages", len(state.Messages))
	return state.Normalize(), true, nil
}

func (r StateRepository) Save(namespace string, state domain.ChatState) error {
	data, err := r.codec.Marshal(state)
	if err != nil {
		return fmt.Errorf("%s encode: %w", r.codec.Name(), err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.backend.Write(ctx, namespace, data)
}

// Namespaces lists persisted namespaces in lexical order.
func (r StateRepository) Namespaces() ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	keys, err := r.backend.Keys(ctx)
	if err != nil {
		return nil, err
	}
	slices.Sort(keys)
	return keys, nil
}

func (r StateRepository) Codec() Codec {
	return r.codec
}

func (r StateRepository) Close() error {
	return r.backend.Close()
}
