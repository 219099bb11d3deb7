// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/fisiocare/fisio-api/internal/service"
	"github.com/fisiocare/fisio-api/internal/utils"
	"github.com/fisiocare/fisio-api/models"
)

func (h *Handler) patientKeyFromQuery(r *http.Request) models.PatientKey {
	return models.PatientKey{
		PacienteID: queryParam(r, "paciente_id"),
		FisioID:    h.services.AuthService.ResolveFisioID(r.Context(), queryParam(r, "fisio_id")),
	}
}

func (h *Handler) listPatientDiagnoses(w http.ResponseWriter, r *http.Request) {
	diagnoses, err := h.services.DiagnosisService.ListPatientDiagnoses(r.Context(), h.patientKeyFromQuery(r))
	if err != nil {
		writeError(w, r, err, "*Handler.listPatientDiagnoses", "")
		return
	}

	utils.WriteJSON(w, diagnoses, http.StatusOK)
}

func (h *Handler) listDiagnoses(w http.ResponseWriter, r *http.Request) {
	diagnoses, err := h.services.DiagnosisService.ListDiagnoses(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listDiagnoses", "")
		return
	}

	utils.WriteJSON(w, diagnoses, http.StatusOK)
}

// findDiagnosesByID matches the "id" parameter as a case-insensitive regular
// expression. An empty parameter matches the whole catalog, a missing one
// binds NULL and matches nothing.
func (h *Handler) findDiagnosesByID(w http.ResponseWriter, r *http.Request) {
	diagnoses, err := h.services.DiagnosisService.FindDiagnosesByID(r.Context(), queryParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.findDiagnosesByID", "")
		return
	}

	utils.WriteJSON(w, diagnoses, http.StatusOK)
}

// latestPatientDiagnosis answers {} for a patient without history.
func (h *Handler) latestPatientDiagnosis(w http.ResponseWriter, r *http.Request) {
	diagnosis, err := h.services.DiagnosisService.LatestPatientDiagnosis(r.Context(), h.patientKeyFromQuery(r))
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.WriteJSON(w, struct{}{}, http.StatusOK)
	case err != nil:
		writeError(w, r, err, "*Handler.latestPatientDiagnosis", "")
	default:
		utils.WriteJSON(w, diagnosis, http.StatusOK)
	}
}
