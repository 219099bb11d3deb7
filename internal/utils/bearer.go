// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
)

// BearerPrefix is the case-sensitive scheme prefix of an Authorization header.
const BearerPrefix = "Bearer "

// ErrNoBearerToken is returned when the header is absent or uses another scheme.
var ErrNoBearerToken = errors.New("authorization header is missing or not a Bearer token")

// ParseBearerToken returns everything after the literal "Bearer " prefix.
//
// The token part is not trimmed or validated: an empty or malformed token is
// left for the verifier to reject.
func ParseBearerToken(authorizationHeader string) (string, error) {
	token, ok := strings.CutPrefix(authorizationHeader, BearerPrefix)
	if !ok {
		return "", ErrNoBearerToken
	}
	return token, nil
}
