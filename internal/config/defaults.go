package config

import "time"

// defaultConfig returns the configuration suitable for running against a
// local PostgreSQL instance with the frontend dev server on port 3000.
// Every recognised option has a default here so the server starts with
// no environment set at all.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: EnvDevelopment,
			Version:     "1.0.0",
		},
		Storage: Storage{
			DB: DB{
				Host:     "localhost",
				Port:     5432,
				Database: "portfolio_db",
				User:     "postgres",
			},
		},
		Server: Server{
			Address:        ":5000",
			RequestTimeout: 30 * time.Second,
			CORSOrigin:     "http://localhost:3000",
		},
	}
}
