// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/service"
	"github.com/fisiocare/fisio-api/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrNotFound:       http.StatusNotFound,
	service.ErrUnauthorized:   http.StatusUnauthorized,
	service.ErrBackendFailure: http.StatusInternalServerError,
	ErrMalformedBody:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server errors use
// message as the plain-text body, or the status text when message is empty.
func writeError(w http.ResponseWriter, r *http.Request, err error, op, message string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status < http.StatusInternalServerError {
		log.Warn().Err(err).Str("func", op).Int("status", status).Send()
		utils.WriteText(w, http.StatusText(status), status)
		return
	}

	log.Err(err).Str("func", op).Msg("request failed")
	if message == "" {
		message = http.StatusText(status)
	}
	utils.WriteText(w, message, status)
}
