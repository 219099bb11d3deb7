// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Diagnosis is a catalog row of the "diagnostico_medico" table.
// The catalog is managed outside of this service and is read-only here.
type Diagnosis struct {
	// ID is the catalog code of the diagnosis.
	ID string `json:"id"`

	// SistemaLesionado is the affected body system.
	SistemaLesionado *string `json:"sistema_lesionado"`

	// ZonaAfectada is the affected body zone.
	ZonaAfectada *string `json:"zona_afectada"`
}

// TableName returns the name of the database table
// associated with the Diagnosis model.
func (d Diagnosis) TableName() string {
	return "diagnostico_medico"
}
