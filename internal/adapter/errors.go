// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// ErrInvalidToken is returned by [TokenVerifier.Verify] for every rejected
// token, whatever the cause. The cause stays wrapped for logging.
var ErrInvalidToken = errors.New("invalid id token")

// Causes wrapped by ErrInvalidToken.
var (
	ErrMissingKeyID   = errors.New("token header has no kid")
	ErrUnknownKeyID   = errors.New("token kid is not a published signing key")
	ErrFetchingCerts  = errors.New("failed to fetch signing certificates")
	ErrInvalidSubject = errors.New("token subject is empty or longer than 128 characters")
	ErrInvalidAuth    = errors.New("token auth_time is in the future")
)

// Construction errors of [NewFirebaseVerifier].
var (
	ErrMissingProjectID   = errors.New("firebase project id is required")
	ErrMissingClientEmail = errors.New("firebase client email is required")
	ErrInvalidPrivateKey  = errors.New("firebase private key is not a valid RSA PEM key")
)
