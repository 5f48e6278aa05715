package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration structs keyed by their type.
type configCache struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

// defaultEnvFile remembers the outcome of loading ./.env.
type defaultEnvFile struct {
	mu     sync.Mutex
	loaded bool
	err    error
}

func (d *defaultEnvFile) load() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.loaded {
		d.err = loadOptionalEnv()
		d.loaded = true
	}
	return d.err
}

func (d *defaultEnvFile) reset() {
	d.mu.Lock()
	d.loaded, d.err = false, nil
	d.mu.Unlock()
}

var (
	globalCache = &configCache{values: make(map[reflect.Type]any)}
	defaultEnv  = &defaultEnvFile{}
)

// LoadEnv loads one or more .env files into the process environment.
// Variables that are already set are not overridden. Without arguments the
// default .env in the working directory is loaded once: a missing file is
// not an error, but an unreadable or malformed one is.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		return defaultEnv.load()
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

func loadOptionalEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Join(ErrLoadingEnvFile, err)
}

// Load parses environment variables into v using `env` struct tags.
//
// The default .env file is loaded once on first use. Each configuration type
// is parsed only once for the lifetime of the process; subsequent calls are
// served from the cache.
//
// Example:
//
//	type ServerConfig struct {
//		Port int    `env:"PORT" envDefault:"5001"`
//		Env  string `env:"NODE_ENV"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := LoadEnv(); err != nil {
		return err
	}

	key := reflect.TypeFor[T]()

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse parses the current environment into v bypassing the cache.
// Useful in tests that tweak variables with t.Setenv.
func Parse[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	*v = parsed
	return nil
}

// ResetCache drops every cached configuration and forgets the default .env
// load, so the next Load reads ./.env again.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.mu.Unlock()
	defaultEnv.reset()
}
