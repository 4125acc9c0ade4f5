package test

import (
	"github.com/kelseyhightower/envconfig"
)

// Config drives the integration suite. Backends needing an external server are
// skipped when their address is empty.
type Config struct {
	RedisAddr   string `envconfig:"REDIS_ADDR"`
	RedisPrefix string `envconfig:"REDIS_PREFIX" default:"supachat-it:"`
	// CHATSTORE_COLOURS enables colorized step headers
	Colours bool `envconfig:"COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("chatstore", &cfg)
	return cfg, err
}
