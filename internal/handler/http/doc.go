// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the fisio API.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, CORS and bearer-token authentication run here before
// requests are delegated to the service layer.
package http
