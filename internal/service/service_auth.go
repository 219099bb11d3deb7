// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/fisiocare/fisio-api/internal/adapter"
	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/utils"
	"github.com/fisiocare/fisio-api/models"
)

// authService verifies bearer tokens and decides which therapist a request
// is scoped to.
type authService struct {
	verifier adapter.TokenVerifier

	// fisioFromToken replaces the caller-supplied fisio_id with the token
	// subject when set.
	fisioFromToken bool

	logger *logger.Logger
}

func NewAuthService(verifier adapter.TokenVerifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		verifier:       verifier,
		fisioFromToken: cfg.FisioFromToken,
		logger:         logger,
	}
}

func (a *authService) Verify(ctx context.Context, token string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	if a.verifier == nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, ErrNoVerifier)
	}

	identity, err := a.verifier.Verify(ctx, token)
	if err != nil {
		log.Warn().Err(err).Str("func", "*authService.Verify").Msg("token rejected")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	log.Debug().Str("func", "*authService.Verify").Str("sub", identity.Subject).Msg("token verified")
	return identity, nil
}

// ResolveFisioID returns supplied unless scoping by token is enabled, in
// which case the verified subject wins. Without a verified identity the scope
// is nil, which matches no rows.
func (a *authService) ResolveFisioID(ctx context.Context, supplied *string) *string {
	if !a.fisioFromToken {
		return supplied
	}

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		return nil
	}

	if supplied != nil && *supplied != identity.Subject {
		logger.FromContext(ctx).Warn().
			Str("func", "*authService.ResolveFisioID").
			Str("supplied", *supplied).
			Str("sub", identity.Subject).
			Msg("ignoring fisio_id that differs from token subject")
	}
	subject := identity.Subject
	return &subject
}
