// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/fisiocare/fisio-api/internal/utils"
)

// routeNotFound answers unknown paths and unregistered methods on known
// paths alike with 404, so the method set of a route is never advertised
// through a 405.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path), http.StatusNotFound)
}
