package store

import (
	"log/slog"
	"supachat/observability"
)

const DefaultMaxNotifyDepth = 16

type options struct {
	log      *slog.Logger
	observer observability.Observer
	maxDepth int
}

type Option func(*options)

func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func WithObserver(observer observability.Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// WithMaxNotifyDepth bounds how deep listeners mutating the store they listen
// to may nest. Values below 1 are ignored.
func WithMaxNotifyDepth(depth int) Option {
	return func(o *options) {
		if depth >= 1 {
			o.maxDepth = depth
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		log:      slog.Default(),
		observer: observability.NoopObserver{},
		maxDepth: DefaultMaxNotifyDepth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
