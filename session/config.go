package session

import (
	"supachat/runtime"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Config is the per-widget configuration. LocalStorageKey is the namespace the
// widget's state lives under.
type Config struct {
	LocalStorageKey string `validate:"required"`
}

// Open resolves the store for cfg.LocalStorageKey in registry and attaches a
// manager to it.
func Open(registry *runtime.Registry, cfg Config, opts ...Option) (*Manager, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return NewManager(registry.GetOrCreate(cfg.LocalStorageKey), opts...)
}
