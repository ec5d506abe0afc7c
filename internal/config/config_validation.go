// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Salama Project Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Retention.Days <= 0 {
		return ErrInvalidRetentionConfigs
	}

	if cfg.Retention.WarningDays < 0 || cfg.Retention.WarningDays >= cfg.Retention.Days {
		return ErrInvalidRetentionConfigs
	}

	if cfg.Retention.SweepInterval <= 0 {
		return ErrInvalidRetentionConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
