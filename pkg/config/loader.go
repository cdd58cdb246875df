package config

import (
	"errors"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided configuration
// struct based on `env` field tags. The default .env file is loaded once
// per process before the first parse; a missing .env file is not an error.
//
// Example:
//
//	type EngineConfig struct {
//	    PnlTolerance float64 `env:"PNL_TOLERANCE" envDefault:"0.0001"`
//	}
//
//	var cfg EngineConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadFile decodes a YAML profile into the provided configuration struct
// based on `yaml` field tags. Fields absent from the file keep their
// current values, so callers typically start from defaults and overlay the
// profile.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingFile, err)
	}
	return nil
}
