// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Database settings are deliberately not required: a missing or unreachable
// database leaves the service running in degraded mode.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if err := cfg.validateStorage(); err != nil {
		return err
	}

	if cfg.App.AuthDisabled {
		if cfg.App.FisioFromToken {
			return fmt.Errorf("%w: fisio scope from token requires authentication", ErrInvalidAppConfigs)
		}
		return nil
	}

	if cfg.Auth.ProjectID == "" || cfg.Auth.ClientEmail == "" || cfg.Auth.PrivateKey == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *StructuredConfig) validateStorage() error {
	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidStorageConfigs)
	}
	return nil
}
