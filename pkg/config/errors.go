package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when a source cannot be decoded into the config struct
	ErrParsingConfig = errors.New("failed to parse configuration")

	// ErrReadingFile is returned when a dotenv or YAML file cannot be read
	ErrReadingFile = errors.New("failed to read configuration file")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
