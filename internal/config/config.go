// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables, an optional JSON file and
// the built-in defaults. With nothing set, the client connects to
// [DefaultHTTPAddress] without a timeout and behaves as a plain interactive
// console.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the favorites service address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Log holds the client log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings of the outbound HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the favorites API, including the /api
	// prefix (e.g. "http://localhost:3000/api"). A bare "host:port" is
	// accepted and gets the http scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request. Zero leaves the HTTP
	// library's default in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds settings of the client log file.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// File is the log file path; relative paths are resolved next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from environment
// variables, the optional JSON file and the defaults, then validates it.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
