package server

import "time"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// RequestTimeoutSeconds bounds every handler, including imports.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"60"`
}

// RequestTimeout returns the handler deadline, falling back to one minute.
func (c Config) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
