// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HistoryEntry is a row of the "paciente_historial_medico" table: one treatment
// episode linking a patient, a therapist and a catalog diagnosis.
//
// The triple (PacienteID, FisioID, DiagnosticoID) identifies an entry. The API
// performs no existence check before inserting, so uniqueness of the triple is
// whatever the database constraints enforce.
type HistoryEntry struct {
	PacienteID    *string `json:"paciente_id"`
	FisioID       *string `json:"fisio_id"`
	DiagnosticoID *string `json:"diagnostico_id"`

	// FechaDiagnostico is the diagnosis date; it orders entries when looking
	// for the latest diagnosis of a patient.
	FechaDiagnostico *string `json:"fecha_diagnostico"`

	FechaInicioTratamiento *string `json:"fecha_inicio_tratamiento"`
	FechaFinTratamiento    *string `json:"fecha_fin_tratamiento"`

	// Sintomas and Medicamentos are free-text clinical notes.
	Sintomas     *string `json:"sintomas"`
	Medicamentos *string `json:"medicamentos"`
}

// TableName returns the name of the database table
// associated with the HistoryEntry model.
func (h HistoryEntry) TableName() string {
	return "paciente_historial_medico"
}

// Key returns the composite key of the entry.
func (h HistoryEntry) Key() HistoryKey {
	return HistoryKey{PacienteID: h.PacienteID, FisioID: h.FisioID, DiagnosticoID: h.DiagnosticoID}
}

// HistoryKey identifies one history entry.
type HistoryKey struct {
	PacienteID    *string `json:"paciente_id"`
	FisioID       *string `json:"fisio_id"`
	DiagnosticoID *string `json:"diagnostico_id"`
}

// PatientKey returns the patient part of the key.
func (k HistoryKey) PatientKey() PatientKey {
	return PatientKey{PacienteID: k.PacienteID, FisioID: k.FisioID}
}

// HistoryDetail is the projection returned when a single entry is fetched:
// every column except the patient and therapist identifiers.
type HistoryDetail struct {
	DiagnosticoID          string  `json:"diagnostico_id"`
	FechaDiagnostico       *string `json:"fecha_diagnostico"`
	FechaInicioTratamiento *string `json:"fecha_inicio_tratamiento"`
	FechaFinTratamiento    *string `json:"fecha_fin_tratamiento"`
	Sintomas               *string `json:"sintomas"`
	Medicamentos           *string `json:"medicamentos"`
}
