// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS_Preflight(t *testing.T) {
	tests := []struct {
		name           string
		requestHeaders string
		wantHeaders    string
	}{
		{name: "default allowed headers", wantHeaders: corsAllowHeaders},
		{name: "requested headers are reflected", requestHeaders: "authorization, content-type", wantHeaders: "authorization, content-type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			req := httptest.NewRequest(http.MethodOptions, "/edit_paciente", nil)
			req.Header.Set("Origin", "https://app.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			if tt.requestHeaders != "" {
				req.Header.Set("Access-Control-Request-Headers", tt.requestHeaders)
			}
			rec := httptest.NewRecorder()
			withCORS(next).ServeHTTP(rec, req)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, corsAllowMethods, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tt.wantHeaders, rec.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestWithCORS_SimpleRequestPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/pacientes", nil)
	req.Header.Set("Origin", "https://app.example")
	rec := httptest.NewRecorder()
	withCORS(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, traceIDHeader, rec.Header().Get("Access-Control-Expose-Headers"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_OptionsWithoutRequestMethod(t *testing.T) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

	rec := httptest.NewRecorder()
	withCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/pacientes", nil))

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, corsAllowMethods, rec.Header().Get("Access-Control-Allow-Methods"))
}
