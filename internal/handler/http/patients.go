// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/fisiocare/fisio-api/internal/utils"
	"github.com/fisiocare/fisio-api/models"
)

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	fisioID := h.services.AuthService.ResolveFisioID(ctx, queryParam(r, "fisio_id"))

	patients, err := h.services.PatientService.ListPatients(ctx, fisioID)
	if err != nil {
		writeError(w, r, err, "*Handler.listPatients", msgListPatients)
		return
	}

	utils.WriteJSON(w, patients, http.StatusOK)
}

func (h *Handler) searchPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	search := models.PatientSearch{
		Nombre:  queryParam(r, "nombre"),
		FisioID: h.services.AuthService.ResolveFisioID(ctx, queryParam(r, "fisio_id")),
	}

	patients, err := h.services.PatientService.SearchPatients(ctx, search)
	if err != nil {
		writeError(w, r, err, "*Handler.searchPatients", msgSearchPatients)
		return
	}

	utils.WriteJSON(w, patients, http.StatusOK)
}

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patient models.Patient
	if err := decodeBody(r, &patient, "*Handler.createPatient"); err != nil {
		writeError(w, r, err, "*Handler.createPatient", "")
		return
	}
	patient.FisioID = h.services.AuthService.ResolveFisioID(ctx, patient.FisioID)

	if err := h.services.PatientService.CreatePatient(ctx, patient); err != nil {
		writeError(w, r, err, "*Handler.createPatient", "")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var patient models.Patient
	if err := decodeBody(r, &patient, "*Handler.updatePatient"); err != nil {
		writeError(w, r, err, "*Handler.updatePatient", "")
		return
	}
	patient.FisioID = h.services.AuthService.ResolveFisioID(ctx, patient.FisioID)

	if err := h.services.PatientService.UpdatePatient(ctx, patient); err != nil {
		writeError(w, r, err, "*Handler.updatePatient", "")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := models.PatientKey{
		PacienteID: queryParam(r, "paciente_id"),
		FisioID:    h.services.AuthService.ResolveFisioID(ctx, queryParam(r, "fisio_id")),
	}

	if err := h.services.PatientService.DeletePatient(ctx, key); err != nil {
		writeError(w, r, err, "*Handler.deletePatient", "")
		return
	}

	w.WriteHeader(http.StatusOK)
}
