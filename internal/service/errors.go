// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist within
	// the caller's scope.
	ErrNotFound = errors.New("record not found")

	// ErrBackendFailure wraps every storage error that is not a plain miss.
	ErrBackendFailure = errors.New("backend failure")

	// ErrUnauthorized is returned by AuthService.Verify for rejected tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNoVerifier is returned when no token verifier has been configured.
	ErrNoVerifier = errors.New("token verifier is not configured")
)
