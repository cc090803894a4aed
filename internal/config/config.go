// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gabriel Serrano

package config

import (
	"fmt"
	"net/url"
	"time"
)

// Environment values recognised in [App.Environment].
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// portfolio-api application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in local-development defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the runtime
	// environment, the hCaptcha secret, and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the PostgreSQL store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout, and CORS settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment selects the runtime mode: "development" or
	// "production". Production enables TLS to the store, real hCaptcha
	// verification, and the configured CORS origin.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// HCaptchaSecret is the secret key used to verify hCaptcha tokens
	// against the siteverify endpoint. In development, or when the value
	// is empty or still contains the "ES_" placeholder marker, the
	// verifier short-circuits and accepts every token.
	// Env: APP_HCAPTCHA_SECRET_KEY
	HCaptchaSecret string `env:"HCAPTCHA_SECRET_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.0.0"). Exposed via the root and health endpoints.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the PostgreSQL store. Individual
// host/port/database/user/password fields are exposed instead of a raw
// DSN so each has an independent local-development default.
type DB struct {
	// Host is the PostgreSQL server hostname.
	// Env: STORAGE_DB_HOST
	Host string `env:"HOST"`

	// Port is the PostgreSQL server port.
	// Env: STORAGE_DB_PORT
	Port int `env:"PORT"`

	// Database is the database name.
	// Env: STORAGE_DB_NAME
	Database string `env:"NAME"`

	// User is the database role used for all connections.
	// Env: STORAGE_DB_USER
	User string `env:"USER"`

	// Password is the database role password.
	// Env: STORAGE_DB_PASSWORD
	Password string `env:"PASSWORD"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request (read to response).
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigin is the origin allowed to call the API from a browser.
	// In development it defaults to the local frontend dev server.
	// Env: SERVER_CORS_ORIGIN
	CORSOrigin string `env:"CORS_ORIGIN"`
}

// IsProduction reports whether the application runs in production mode.
func (cfg *StructuredConfig) IsProduction() bool {
	return cfg.App.Environment == EnvProduction
}

// DSN assembles a PostgreSQL connection string from the individual DB
// fields. TLS to the store is tied to the production flag: sslmode is
// "require" in production and "disable" otherwise.
func (cfg *StructuredConfig) DSN() string {
	sslMode := "disable"
	if cfg.IsProduction() {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.Storage.DB.User),
		url.QueryEscape(cfg.Storage.DB.Password),
		cfg.Storage.DB.Host,
		cfg.Storage.DB.Port,
		cfg.Storage.DB.Database,
		sslMode,
	)
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in local-development defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
