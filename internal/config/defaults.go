package config

import "github.com/MKhiriev/receitas-client/internal/logger"

const (
	// DefaultHTTPAddress is where the favorites API listens in a local
	// development setup.
	DefaultHTTPAddress = "http://localhost:3000/api"

	// DefaultLogLevel is applied when LOG_LEVEL is not set.
	DefaultLogLevel = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress: DefaultHTTPAddress,
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  logger.DefaultLogFile,
		},
	}
}
