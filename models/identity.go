// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is the verified claim set extracted from a bearer token.
type Identity struct {
	// Subject is the identity provider's user id ("sub" claim).
	Subject string `json:"sub"`

	// Email is the e-mail claim when present.
	Email string `json:"email,omitempty"`

	// EmailVerified mirrors the "email_verified" claim.
	EmailVerified bool `json:"email_verified,omitempty"`

	// AuthTime is the moment the user authenticated with the provider.
	AuthTime time.Time `json:"auth_time,omitzero"`

	// ExpiresAt is the token expiry.
	ExpiresAt time.Time `json:"exp,omitzero"`
}
