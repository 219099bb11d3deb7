// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// The "Authorization" header must be "Bearer <token>". A missing or
// differently prefixed header is rejected with 401 "No autorizado"; a token
// the verifier refuses is rejected with 401 "Token inválido". On success the
// verified identity is stored in the request context via [utils.WithIdentity].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteText(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteText(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Verify(ctx, token)
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("error verifying token")
			utils.WriteText(w, msgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
