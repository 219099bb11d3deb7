// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds clients of external systems. Currently this is the
// identity provider that issues the bearer tokens accepted by the API.
package adapter

import (
	"context"

	"github.com/fisiocare/fisio-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TokenVerifier validates a bearer token and returns the identity it asserts.
// Any failure, including an unreachable key endpoint, is reported as an error
// wrapping ErrInvalidToken.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (models.Identity, error)
}
