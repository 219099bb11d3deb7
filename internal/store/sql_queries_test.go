// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/fisiocare/fisio-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildQueries(t *testing.T) {
	patient := models.Patient{
		PacienteID: strPtr("p-1"),
		Nombre:     strPtr("Ana"),
		Apellidos:  strPtr("Ruiz"),
		FisioID:    strPtr("f-1"),
	}
	entry := models.HistoryEntry{
		PacienteID:       strPtr("p-1"),
		FisioID:          strPtr("f-1"),
		DiagnosticoID:    strPtr("D01"),
		FechaDiagnostico: strPtr("2024-03-01"),
		Sintomas:         strPtr("dolor"),
	}
	pKey := models.PatientKey{PacienteID: strPtr("p-1"), FisioID: strPtr("f-1")}
	hKey := models.HistoryKey{PacienteID: strPtr("p-1"), FisioID: strPtr("f-1"), DiagnosticoID: strPtr("D01")}

	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "list patients",
			build:     func() (string, []any, error) { return buildListPatientsQuery(strPtr("f-1")) },
			wantQuery: "SELECT paciente_id, nombre, apellidos, direccion, telefono, fecha_nacimiento, fisio_id FROM paciente_fisio WHERE fisio_id = $1",
			wantArgs:  []any{strPtr("f-1")},
		},
		{
			name: "search patients",
			build: func() (string, []any, error) {
				return buildSearchPatientsQuery(models.PatientSearch{Nombre: strPtr("ana r"), FisioID: strPtr("f-1")})
			},
			wantQuery: "SELECT paciente_id, nombre, apellidos, direccion, telefono, fecha_nacimiento, fisio_id FROM paciente_fisio WHERE CONCAT(nombre, ' ', apellidos) ~* $1 AND fisio_id = $2",
			wantArgs:  []any{strPtr("ana r"), strPtr("f-1")},
		},
		{
			name:      "insert patient",
			build:     func() (string, []any, error) { return buildInsertPatientQuery(patient) },
			wantQuery: "INSERT INTO paciente_fisio (paciente_id,nombre,apellidos,direccion,telefono,fecha_nacimiento,fisio_id) VALUES ($1,$2,$3,$4,$5,$6,$7)",
			wantArgs: []any{strPtr("p-1"), patient.Nombre, patient.Apellidos, (*string)(nil), (*string)(nil),
				(*string)(nil), strPtr("f-1")},
		},
		{
			name:      "update patient filters on both keys",
			build:     func() (string, []any, error) { return buildUpdatePatientQuery(patient) },
			wantQuery: "UPDATE paciente_fisio SET nombre = $1, apellidos = $2, direccion = $3, telefono = $4, fecha_nacimiento = $5 WHERE paciente_id = $6 AND fisio_id = $7",
			wantArgs: []any{patient.Nombre, patient.Apellidos, (*string)(nil), (*string)(nil),
				(*string)(nil), strPtr("p-1"), strPtr("f-1")},
		},
		{
			name:      "delete patient",
			build:     func() (string, []any, error) { return buildDeletePatientQuery(pKey) },
			wantQuery: "DELETE FROM paciente_fisio WHERE paciente_id = $1 AND fisio_id = $2",
			wantArgs:  []any{strPtr("p-1"), strPtr("f-1")},
		},
		{
			name:      "list diagnoses",
			build:     buildListDiagnosesQuery,
			wantQuery: "SELECT id, sistema_lesionado, zona_afectada FROM diagnostico_medico",
			wantArgs:  nil,
		},
		{
			name:      "diagnoses by id pattern",
			build:     func() (string, []any, error) { return buildFindDiagnosesByIDQuery(strPtr("")) },
			wantQuery: "SELECT id, sistema_lesionado, zona_afectada FROM diagnostico_medico WHERE id ~* $1",
			wantArgs:  []any{strPtr("")},
		},
		{
			name:      "patient diagnoses",
			build:     func() (string, []any, error) { return buildListPatientDiagnosesQuery(pKey) },
			wantQuery: "SELECT d.id, d.sistema_lesionado, d.zona_afectada FROM diagnostico_medico d JOIN paciente_historial_medico hm ON hm.diagnostico_id = d.id WHERE hm.paciente_id = $1 AND hm.fisio_id = $2",
			wantArgs:  []any{strPtr("p-1"), strPtr("f-1")},
		},
		{
			name:      "latest diagnosis breaks ties on diagnostico_id",
			build:     func() (string, []any, error) { return buildLatestPatientDiagnosisQuery(pKey) },
			wantQuery: "SELECT dm.id, dm.sistema_lesionado, dm.zona_afectada FROM diagnostico_medico dm JOIN paciente_historial_medico ph ON ph.diagnostico_id = dm.id WHERE ph.paciente_id = $1 AND ph.fisio_id = $2 ORDER BY ph.fecha_diagnostico DESC, ph.diagnostico_id DESC LIMIT 1",
			wantArgs:  []any{strPtr("p-1"), strPtr("f-1")},
		},
		{
			name:      "select history entry",
			build:     func() (string, []any, error) { return buildSelectHistoryEntryQuery(hKey) },
			wantQuery: "SELECT diagnostico_id, fecha_diagnostico, fecha_inicio_tratamiento, fecha_fin_tratamiento, sintomas, medicamentos FROM paciente_historial_medico WHERE diagnostico_id = $1 AND fisio_id = $2 AND paciente_id = $3",
			wantArgs:  []any{strPtr("D01"), strPtr("f-1"), strPtr("p-1")},
		},
		{
			name:      "insert history entry returns row",
			build:     func() (string, []any, error) { return buildInsertHistoryEntryQuery(entry) },
			wantQuery: "INSERT INTO paciente_historial_medico (paciente_id,fisio_id,diagnostico_id,fecha_diagnostico,fecha_inicio_tratamiento,fecha_fin_tratamiento,sintomas,medicamentos) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING paciente_id, fisio_id, diagnostico_id, fecha_diagnostico, fecha_inicio_tratamiento, fecha_fin_tratamiento, sintomas, medicamentos",
			wantArgs: []any{strPtr("p-1"), strPtr("f-1"), strPtr("D01"), entry.FechaDiagnostico, (*string)(nil), (*string)(nil),
				entry.Sintomas, (*string)(nil)},
		},
		{
			name:      "update history entry filters on the triple",
			build:     func() (string, []any, error) { return buildUpdateHistoryEntryQuery(entry) },
			wantQuery: "UPDATE paciente_historial_medico SET fecha_diagnostico = $1, fecha_inicio_tratamiento = $2, fecha_fin_tratamiento = $3, sintomas = $4, medicamentos = $5 WHERE diagnostico_id = $6 AND fisio_id = $7 AND paciente_id = $8 RETURNING paciente_id, fisio_id, diagnostico_id, fecha_diagnostico, fecha_inicio_tratamiento, fecha_fin_tratamiento, sintomas, medicamentos",
			wantArgs: []any{entry.FechaDiagnostico, (*string)(nil), (*string)(nil), entry.Sintomas,
				(*string)(nil), strPtr("D01"), strPtr("f-1"), strPtr("p-1")},
		},
		{
			name:      "delete history entry",
			build:     func() (string, []any, error) { return buildDeleteHistoryEntryQuery(hKey) },
			wantQuery: "DELETE FROM paciente_historial_medico WHERE paciente_id = $1 AND fisio_id = $2 AND diagnostico_id = $3",
			wantArgs:  []any{strPtr("p-1"), strPtr("f-1"), strPtr("D01")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildSearchPatientsQuery_PatternIsBound(t *testing.T) {
	query, args, err := buildSearchPatientsQuery(models.PatientSearch{Nombre: strPtr("'; DROP TABLE paciente_fisio; --"), FisioID: strPtr("f-1")})

	require.NoError(t, err)
	assert.NotContains(t, query, "DROP")
	assert.Equal(t, strPtr("'; DROP TABLE paciente_fisio; --"), args[0])
}

func Test_buildQueries_AbsentValuesBindNULL(t *testing.T) {
	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  int
	}{
		{
			name:      "insert patient from empty body",
			build:     func() (string, []any, error) { return buildInsertPatientQuery(models.Patient{}) },
			wantQuery: "INSERT INTO paciente_fisio (paciente_id,nombre,apellidos,direccion,telefono,fecha_nacimiento,fisio_id) VALUES ($1,$2,$3,$4,$5,$6,$7)",
			wantArgs:  7,
		},
		{
			name:      "list patients without fisio_id",
			build:     func() (string, []any, error) { return buildListPatientsQuery(nil) },
			wantQuery: "SELECT paciente_id, nombre, apellidos, direccion, telefono, fecha_nacimiento, fisio_id FROM paciente_fisio WHERE fisio_id = $1",
			wantArgs:  1,
		},
		{
			name:      "search without nombre",
			build:     func() (string, []any, error) { return buildSearchPatientsQuery(models.PatientSearch{}) },
			wantQuery: "SELECT paciente_id, nombre, apellidos, direccion, telefono, fecha_nacimiento, fisio_id FROM paciente_fisio WHERE CONCAT(nombre, ' ', apellidos) ~* $1 AND fisio_id = $2",
			wantArgs:  2,
		},
		{
			name:      "delete history entry without keys",
			build:     func() (string, []any, error) { return buildDeleteHistoryEntryQuery(models.HistoryKey{}) },
			wantQuery: "DELETE FROM paciente_historial_medico WHERE paciente_id = $1 AND fisio_id = $2 AND diagnostico_id = $3",
			wantArgs:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()

			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			require.Len(t, args, tt.wantArgs)
			for _, arg := range args {
				assert.Nil(t, arg)
			}
		})
	}
}
