// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gabriel Serrano

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Environment != EnvDevelopment && cfg.App.Environment != EnvProduction {
		return ErrInvalidEnvironment
	}

	if cfg.Storage.DB.Host == "" || cfg.Storage.DB.Port < 1 || cfg.Storage.DB.Database == "" || cfg.Storage.DB.User == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.Address == "" {
		return ErrInvalidServerConfigs
	}

	// A production deployment should never run against the placeholder
	// secret: the verifier would silently accept every token.
	if cfg.IsProduction() && (cfg.App.HCaptchaSecret == "" || strings.Contains(cfg.App.HCaptchaSecret, "ES_")) {
		return ErrMissingCaptchaSecret
	}

	return nil
}
