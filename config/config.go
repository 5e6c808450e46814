package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validation is the host-facing environment configuration for the validation
// engine. The engine itself takes explicit options; this struct exists so
// applications can wire their defaults from the environment in one call.
type Validation struct {
	// DefaultLocale is the locale used when a validate call does not name one.
	DefaultLocale string `env:"FORMSCHEMA_DEFAULT_LOCALE" envDefault:"en"`

	// SchemaDir, when set, is a directory of schema files loaded into the
	// schema registry at startup.
	SchemaDir string `env:"FORMSCHEMA_SCHEMA_DIR"`

	// Strict makes the schema registry reject misconfigured schemas at
	// registration time instead of failing closed at validation time.
	Strict bool `env:"FORMSCHEMA_STRICT" envDefault:"false"`
}

// ErrParsingConfig wraps environment parsing failures.
var ErrParsingConfig = errors.New("failed to parse validation config")

var dotenvOnce sync.Once

// Load reads the validation configuration from the environment, loading a
// .env file first if one exists.
func Load() (Validation, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Validation
	if err := env.Parse(&cfg); err != nil {
		return Validation{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
