// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Response texts returned to clients. They are part of the public contract
// of the API and are kept in Spanish.
const (
	msgUnauthorized      = "No autorizado"
	msgInvalidToken      = "Token inválido"
	msgDiagnosisNotFound = "Diagnóstico no encontrado"
	msgListPatients      = "Error al obtener los pacientes"
	msgSearchPatients    = "Error al buscar el paciente"
)

// ErrMalformedBody is returned when a request body is not valid JSON. The
// statement is not executed and the client receives a 500.
var ErrMalformedBody = errors.New("malformed JSON body")

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// request carries no "Authorization" header at all.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
