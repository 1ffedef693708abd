// Package config handles configuration for the server: defaults, an
// optional .env file, environment variables, a JSON overlay, and
// command-line flags, in that order.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the FinTrack server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenValidityDuration: access token lifetime.
//
// SecretKey and DatabaseDSN have no defaults: the process refuses to start
// without them rather than failing per request.
type Config struct {
	EndpointAddrHTTP      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults. The signing
// secret and database DSN are deliberately left empty.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.TokenValidityDuration = 24 * time.Hour
}

// Validate reports the startup misconfigurations that must stop the process.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("signing secret is not configured")
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN is not configured")
	}
	if c.TokenValidityDuration <= 0 {
		return errors.New("token validity duration must be positive")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
