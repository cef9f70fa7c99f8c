package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Option configures a Load call.
type Option func(*options)

type options struct {
	prefix      string
	dotenvFiles []string
	yamlFile    string
	environment map[string]string
}

// WithPrefix namespaces every env tag, e.g. "EVENTS_" turns MAX_QUEUES into EVENTS_MAX_QUEUES.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithDotEnv loads the given dotenv files into the process environment before
// parsing. Missing files are an error.
func WithDotEnv(files ...string) Option {
	return func(o *options) {
		o.dotenvFiles = append(o.dotenvFiles, files...)
	}
}

// WithYAMLFile decodes path into the struct before environment variables are applied.
// An empty path is ignored.
func WithYAMLFile(path string) Option {
	return func(o *options) {
		o.yamlFile = path
	}
}

// WithEnvironment parses from vars instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load fills v from the configured sources. See the package documentation
// for the order in which sources are applied.
//
// Example:
//
//	cfg := events.DefaultConfig()
//	if err := config.Load(&cfg, config.WithPrefix("EVENTS_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.dotenvFiles) > 0 {
		if err := godotenv.Load(o.dotenvFiles...); err != nil {
			return errors.Join(ErrReadingFile, err)
		}
	}

	if o.yamlFile != "" {
		if err := decodeYAML(o.yamlFile, v); err != nil {
			return err
		}
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the program to start.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

func decodeYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}
