// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application:
// type-safe context keys, HTTP response writing, bearer header parsing,
// outbound HTTP client construction and trace id generation.
package utils

import (
	"context"

	"github.com/fisiocare/fisio-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// verified caller identity.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, id)
}

// GetIdentityFromContext retrieves the verified identity from the context.
//
// ok is false when the request was not authenticated (for example when
// authentication is disabled) or the value has an unexpected type.
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return id, ok
}
