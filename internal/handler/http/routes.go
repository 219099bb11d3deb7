// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withCORS)

	// operational routes, never authenticated
	router.Get("/health", h.health)

	router.Group(func(r chi.Router) {
		if !h.authDisabled {
			r.Use(h.auth)
		}

		// patients
		r.Get("/pacientes", h.listPatients)
		r.Get("/paciente", h.searchPatients)
		r.Post("/new_paciente", h.createPatient)
		r.Put("/edit_paciente", h.updatePatient)
		r.Delete("/delete_paciente", h.deletePatient)

		// diagnosis catalog
		r.Get("/historialPaciente", h.listPatientDiagnoses)
		r.Get("/diagnosticosDisponibles", h.listDiagnoses)
		r.Get("/diagnosticoById", h.findDiagnosesByID)
		r.Get("/ultimo_diagnostico_paciente", h.latestPatientDiagnosis)

		// medical history
		r.Get("/diagnostico_paciente", h.getHistoryEntry)
		r.Post("/new_diagnostico_paciente", h.createHistoryEntry)
		r.Put("/edit_diagnostico_paciente", h.updateHistoryEntry)
		r.Delete("/delete_diagnostico_paciente", h.deleteHistoryEntry)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
