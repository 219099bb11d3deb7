// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/fisiocare/fisio-api/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	patientsTable  = "paciente_fisio"
	diagnosisTable = "diagnostico_medico"
	historyTable   = "paciente_historial_medico"

	patientDiagnosesFrom = diagnosisTable + " d"
	patientDiagnosesJoin = historyTable + " hm ON hm.diagnostico_id = d.id"
	latestDiagnosisFrom  = diagnosisTable + " dm"
	latestDiagnosisJoin  = historyTable + " ph ON ph.diagnostico_id = dm.id"
)

var (
	patientColumns = []string{
		"paciente_id",
		"nombre",
		"apellidos",
		"direccion",
		"telefono",
		"fecha_nacimiento",
		"fisio_id",
	}

	diagnosisColumns = []string{
		"id",
		"sistema_lesionado",
		"zona_afectada",
	}

	historyColumns = []string{
		"paciente_id",
		"fisio_id",
		"diagnostico_id",
		"fecha_diagnostico",
		"fecha_inicio_tratamiento",
		"fecha_fin_tratamiento",
		"sintomas",
		"medicamentos",
	}

	historyDetailColumns = []string{
		"diagnostico_id",
		"fecha_diagnostico",
		"fecha_inicio_tratamiento",
		"fecha_fin_tratamiento",
		"sintomas",
		"medicamentos",
	}
)

// qualified prefixes every column with a table alias.
func qualified(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// bindEq compares column with a bound parameter. A nil value is bound as
// NULL and never compares equal, where sq.Eq would render IS NULL.
func bindEq(column string, value *string) sq.Sqlizer {
	return sq.Expr(column+" = ?", value)
}

// patients

func buildListPatientsQuery(fisioID *string) (string, []any, error) {
	return psql.Select(patientColumns...).
		From(patientsTable).
		Where(bindEq("fisio_id", fisioID)).
		ToSql()
}

// buildSearchPatientsQuery matches the pattern case-insensitively against
// "nombre apellidos". The pattern is bound as a parameter, never inlined.
func buildSearchPatientsQuery(search models.PatientSearch) (string, []any, error) {
	return psql.Select(patientColumns...).
		From(patientsTable).
		Where(sq.Expr("CONCAT(nombre, ' ', apellidos) ~* ?", search.Nombre)).
		Where(bindEq("fisio_id", search.FisioID)).
		ToSql()
}

func buildInsertPatientQuery(p models.Patient) (string, []any, error) {
	return psql.Insert(patientsTable).
		Columns(patientColumns...).
		Values(p.PacienteID, p.Nombre, p.Apellidos, p.Direccion, p.Telefono, p.FechaNacimiento, p.FisioID).
		ToSql()
}

func buildUpdatePatientQuery(p models.Patient) (string, []any, error) {
	return psql.Update(patientsTable).
		Set("nombre", p.Nombre).
		Set("apellidos", p.Apellidos).
		Set("direccion", p.Direccion).
		Set("telefono", p.Telefono).
		Set("fecha_nacimiento", p.FechaNacimiento).
		Where(bindEq("paciente_id", p.PacienteID)).
		Where(bindEq("fisio_id", p.FisioID)).
		ToSql()
}

func buildDeletePatientQuery(key models.PatientKey) (string, []any, error) {
	return psql.Delete(patientsTable).
		Where(bindEq("paciente_id", key.PacienteID)).
		Where(bindEq("fisio_id", key.FisioID)).
		ToSql()
}

// diagnoses

func buildListDiagnosesQuery() (string, []any, error) {
	return psql.Select(diagnosisColumns...).
		From(diagnosisTable).
		ToSql()
}

// buildFindDiagnosesByIDQuery treats the id as a case-insensitive regular
// expression. An empty pattern matches every diagnosis, a nil one none.
func buildFindDiagnosesByIDQuery(pattern *string) (string, []any, error) {
	return psql.Select(diagnosisColumns...).
		From(diagnosisTable).
		Where(sq.Expr("id ~* ?", pattern)).
		ToSql()
}

func buildListPatientDiagnosesQuery(key models.PatientKey) (string, []any, error) {
	return psql.Select(qualified("d", diagnosisColumns)...).
		From(patientDiagnosesFrom).
		Join(patientDiagnosesJoin).
		Where(bindEq("hm.paciente_id", key.PacienteID)).
		Where(bindEq("hm.fisio_id", key.FisioID)).
		ToSql()
}

// buildLatestPatientDiagnosisQuery orders by diagnosis date and breaks ties
// on diagnostico_id so equal dates always yield the same row.
func buildLatestPatientDiagnosisQuery(key models.PatientKey) (string, []any, error) {
	return psql.Select(qualified("dm", diagnosisColumns)...).
		From(latestDiagnosisFrom).
		Join(latestDiagnosisJoin).
		Where(bindEq("ph.paciente_id", key.PacienteID)).
		Where(bindEq("ph.fisio_id", key.FisioID)).
		OrderBy("ph.fecha_diagnostico DESC", "ph.diagnostico_id DESC").
		Limit(1).
		ToSql()
}

// history

func buildSelectHistoryEntryQuery(key models.HistoryKey) (string, []any, error) {
	return psql.Select(historyDetailColumns...).
		From(historyTable).
		Where(bindEq("diagnostico_id", key.DiagnosticoID)).
		Where(bindEq("fisio_id", key.FisioID)).
		Where(bindEq("paciente_id", key.PacienteID)).
		ToSql()
}

func buildInsertHistoryEntryQuery(e models.HistoryEntry) (string, []any, error) {
	return psql.Insert(historyTable).
		Columns(historyColumns...).
		Values(e.PacienteID, e.FisioID, e.DiagnosticoID, e.FechaDiagnostico, e.FechaInicioTratamiento,
			e.FechaFinTratamiento, e.Sintomas, e.Medicamentos).
		Suffix(returning(historyColumns)).
		ToSql()
}

func buildUpdateHistoryEntryQuery(e models.HistoryEntry) (string, []any, error) {
	return psql.Update(historyTable).
		Set("fecha_diagnostico", e.FechaDiagnostico).
		Set("fecha_inicio_tratamiento", e.FechaInicioTratamiento).
		Set("fecha_fin_tratamiento", e.FechaFinTratamiento).
		Set("sintomas", e.Sintomas).
		Set("medicamentos", e.Medicamentos).
		Where(bindEq("diagnostico_id", e.DiagnosticoID)).
		Where(bindEq("fisio_id", e.FisioID)).
		Where(bindEq("paciente_id", e.PacienteID)).
		Suffix(returning(historyColumns)).
		ToSql()
}

func buildDeleteHistoryEntryQuery(key models.HistoryKey) (string, []any, error) {
	return psql.Delete(historyTable).
		Where(bindEq("paciente_id", key.PacienteID)).
		Where(bindEq("fisio_id", key.FisioID)).
		Where(bindEq("diagnostico_id", key.DiagnosticoID)).
		ToSql()
}
