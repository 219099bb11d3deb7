// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Patient is a row of the "paciente_fisio" table.
//
// A patient always belongs to exactly one therapist ([Patient.FisioID]); the
// pair (PacienteID, FisioID) is the key every update and delete filters on.
// Every field is a pointer: a field absent from the request binds NULL, and
// NULL columns render as JSON null.
type Patient struct {
	// PacienteID is the patient identifier assigned by the client application.
	PacienteID *string `json:"paciente_id"`

	// Nombre is the first name.
	Nombre *string `json:"nombre"`

	// Apellidos holds the surnames.
	Apellidos *string `json:"apellidos"`

	// Direccion is the postal address.
	Direccion *string `json:"direccion"`

	// Telefono is the contact phone number.
	Telefono *string `json:"telefono"`

	// FechaNacimiento is the birth date. Accepted as "YYYY-MM-DD" on input.
	FechaNacimiento *string `json:"fecha_nacimiento"`

	// FisioID identifies the owning therapist.
	FisioID *string `json:"fisio_id"`
}

// TableName returns the name of the database table
// associated with the Patient model.
func (p Patient) TableName() string {
	return "paciente_fisio"
}

// Key returns the composite key of the patient.
func (p Patient) Key() PatientKey {
	return PatientKey{PacienteID: p.PacienteID, FisioID: p.FisioID}
}

// PatientKey identifies a single patient inside a therapist's scope.
type PatientKey struct {
	PacienteID *string `json:"paciente_id"`
	FisioID    *string `json:"fisio_id"`
}

// PatientSearch carries the criteria of a name search.
type PatientSearch struct {
	// Nombre is a case-insensitive POSIX regular expression matched against
	// "nombre apellidos". An empty pattern matches every patient, a nil one
	// matches none.
	Nombre *string `json:"nombre"`

	// FisioID restricts the search to one therapist.
	FisioID *string `json:"fisio_id"`
}
