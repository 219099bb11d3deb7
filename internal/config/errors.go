// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an unusable listen port.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid pool settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates that authentication is enabled but the
	// Firebase project id, client email or private key is missing.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidAppConfigs indicates contradictory feature switches.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
