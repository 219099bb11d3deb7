// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the JSON body used for structured error replies such as
// {"message": "Diagnóstico no encontrado"}.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	// Status is "ok" when the database answered a ping, "unavailable" otherwise.
	Status string `json:"status"`
}
