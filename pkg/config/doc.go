// Package config loads configuration structs from layered sources.
//
// It wraps `github.com/joho/godotenv`, `gopkg.in/yaml.v3` and
// `github.com/caarlos0/env/v11`. Sources are applied in this order, each one
// overriding the previous:
//
//  1. values already present in the struct (typically Go defaults);
//  2. an optional YAML file (WithYAMLFile);
//  3. environment variables, optionally namespaced with WithPrefix. Dotenv
//     files passed with WithDotEnv are loaded into the process environment
//     first; variables that are already set win over dotenv entries.
//
// Unset variables leave fields untouched, so defaults prefilled in Go survive.
// Fields tagged with `envDefault` are the exception: the tag is applied
// whenever the variable is unset and overrides YAML values. Structs meant to
// be layered should prefill defaults in Go instead.
//
// # Usage
//
//	type Limits struct {
//	    MaxQueues int `env:"MAX_QUEUES" yaml:"max_queues"`
//	}
//
//	cfg := Limits{MaxQueues: 25}
//	err := config.Load(&cfg,
//	    config.WithYAMLFile("/etc/device/events.yaml"),
//	    config.WithPrefix("EVENTS_"),
//	)
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig` – a source could not be decoded into the struct.
//   - `ErrReadingFile`   – a dotenv or YAML file could not be read.
//   - `ErrNilPointer`    – nil pointer passed to `Load`/`MustLoad`.
package config
