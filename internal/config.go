package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var validate = validator.New()

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	StorageBackend  string        `env:"STORAGE_BACKEND,default=badger" validate:"oneof=badger sqlite redis memory"`
	StorageCodec    string        `env:"STORAGE_CODEC,default=json" validate:"oneof=json proto"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,default=./data/badger"`
	SQLiteFilepath  string        `env:"SQLITE_FILEPATH,default=./data/chat_state.db"`
	RedisAddr       string        `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPrefix     string        `env:"REDIS_PREFIX,default=supachat:"`
	StorageTimeout  time.Duration `env:"STORAGE_TIMEOUT,default=2s" validate:"gt=0"`
	MaxNotifyDepth  int           `env:"MAX_NOTIFY_DEPTH,default=16" validate:"gte=1"`
	DebugPort       int           `env:"DEBUG_PORT,default=6060" validate:"gt=0,lte=65535"`
	LocalStorageKey string        `env:"LOCAL_STORAGE_KEY,default=supachat" validate:"required"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
