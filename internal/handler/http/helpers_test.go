// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/logger"
	"github.com/fisiocare/fisio-api/internal/mock"
	"github.com/fisiocare/fisio-api/internal/service"
	"go.uber.org/mock/gomock"
)

// serviceMocks groups the mocked services behind a test Handler.
type serviceMocks struct {
	auth      *mock.MockAuthService
	patients  *mock.MockPatientService
	diagnoses *mock.MockDiagnosisService
	history   *mock.MockHistoryService
	health    *mock.MockHealthService
}

func newTestHandlerWithMocks(t *testing.T, cfg config.App) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		auth:      mock.NewMockAuthService(ctrl),
		patients:  mock.NewMockPatientService(ctrl),
		diagnoses: mock.NewMockDiagnosisService(ctrl),
		history:   mock.NewMockHistoryService(ctrl),
		health:    mock.NewMockHealthService(ctrl),
	}

	services := &service.Services{
		AuthService:      m.auth,
		PatientService:   m.patients,
		DiagnosisService: m.diagnoses,
		HistoryService:   m.history,
		HealthService:    m.health,
	}

	return NewHandler(services, cfg, logger.Nop()), m
}

// passThroughFisioID makes ResolveFisioID return the caller-supplied value.
func (m *serviceMocks) passThroughFisioID() {
	m.auth.EXPECT().ResolveFisioID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, supplied *string) *string { return supplied }).
		AnyTimes()
}

// serve runs a request through the full router with authentication disabled
// unless the handler was built otherwise.
func serve(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	return serveRequest(h, req)
}

func serveRequest(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func newAuthedRequest(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func strPtr(s string) *string {
	return &s
}

var noAuth = config.App{AuthDisabled: true}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})
