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

func (h *Handler) historyKeyFromQuery(r *http.Request) models.HistoryKey {
	return models.HistoryKey{
		PacienteID:    queryParam(r, "paciente_id"),
		FisioID:       h.services.AuthService.ResolveFisioID(r.Context(), queryParam(r, "fisio_id")),
		DiagnosticoID: queryParam(r, "diagnostico_id"),
	}
}

// getHistoryEntry answers {} when the key matches no entry.
func (h *Handler) getHistoryEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.HistoryService.GetHistoryEntry(r.Context(), h.historyKeyFromQuery(r))
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.WriteJSON(w, struct{}{}, http.StatusOK)
	case err != nil:
		writeError(w, r, err, "*Handler.getHistoryEntry", "")
	default:
		utils.WriteJSON(w, entry, http.StatusOK)
	}
}

func (h *Handler) createHistoryEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var entry models.HistoryEntry
	if err := decodeBody(r, &entry, "*Handler.createHistoryEntry"); err != nil {
		writeError(w, r, err, "*Handler.createHistoryEntry", "")
		return
	}
	entry.FisioID = h.services.AuthService.ResolveFisioID(ctx, entry.FisioID)

	created, err := h.services.HistoryService.CreateHistoryEntry(ctx, entry)
	if err != nil {
		writeError(w, r, err, "*Handler.createHistoryEntry", "")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateHistoryEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var entry models.HistoryEntry
	if err := decodeBody(r, &entry, "*Handler.updateHistoryEntry"); err != nil {
		writeError(w, r, err, "*Handler.updateHistoryEntry", "")
		return
	}
	entry.FisioID = h.services.AuthService.ResolveFisioID(ctx, entry.FisioID)

	updated, err := h.services.HistoryService.UpdateHistoryEntry(ctx, entry)
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.WriteJSON(w, models.MessageResponse{Message: msgDiagnosisNotFound}, http.StatusNotFound)
	case err != nil:
		writeError(w, r, err, "*Handler.updateHistoryEntry", "")
	default:
		utils.WriteJSON(w, updated, http.StatusOK)
	}
}

func (h *Handler) deleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HistoryService.DeleteHistoryEntry(r.Context(), h.historyKeyFromQuery(r)); err != nil {
		writeError(w, r, err, "*Handler.deleteHistoryEntry", "")
		return
	}

	w.WriteHeader(http.StatusOK)
}
