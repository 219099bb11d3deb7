// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/fisiocare/fisio-api/internal/config"
	"github.com/fisiocare/fisio-api/internal/service"
	"github.com/fisiocare/fisio-api/internal/store"
	"github.com/fisiocare/fisio-api/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var backendErr = fmt.Errorf("%w: %w", service.ErrBackendFailure, store.ErrExecutingQuery)

func TestListPatients(t *testing.T) {
	t.Run("returns the therapist's patients", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().ListPatients(gomock.Any(), strPtr("f-1")).Return([]models.Patient{
			{PacienteID: strPtr("p-1"), Nombre: strPtr("Ana"), Apellidos: strPtr("López"), FisioID: strPtr("f-1")},
		}, nil)

		rec := serve(h, http.MethodGet, "/pacientes?fisio_id=f-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `[{"paciente_id":"p-1","nombre":"Ana","apellidos":"López","direccion":null,
			"telefono":null,"fecha_nacimiento":null,"fisio_id":"f-1"}]`, rec.Body.String())
	})

	t.Run("missing fisio_id binds NULL", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().ListPatients(gomock.Any(), nil).Return([]models.Patient{}, nil)

		rec := serve(h, http.MethodGet, "/pacientes", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("backend failure", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().ListPatients(gomock.Any(), strPtr("f-1")).Return(nil, backendErr)

		rec := serve(h, http.MethodGet, "/pacientes?fisio_id=f-1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Error al obtener los pacientes", rec.Body.String())
	})

	t.Run("scope comes from the token when configured", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, config.App{})
		m.auth.EXPECT().Verify(gomock.Any(), "tok").Return(models.Identity{Subject: "uid-1"}, nil)
		m.auth.EXPECT().ResolveFisioID(gomock.Any(), strPtr("someone-else")).Return(strPtr("uid-1"))
		m.patients.EXPECT().ListPatients(gomock.Any(), strPtr("uid-1")).Return([]models.Patient{}, nil)

		req := newAuthedRequest(http.MethodGet, "/pacientes?fisio_id=someone-else", "tok")
		rec := serveRequest(h, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSearchPatients(t *testing.T) {
	t.Run("passes name pattern and scope", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().
			SearchPatients(gomock.Any(), models.PatientSearch{Nombre: strPtr("ana l"), FisioID: strPtr("f-1")}).
			Return([]models.Patient{{PacienteID: strPtr("p-1"), FisioID: strPtr("f-1")}}, nil)

		rec := serve(h, http.MethodGet, "/paciente?nombre=ana+l&fisio_id=f-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"paciente_id":"p-1"`)
	})

	t.Run("empty name binds the empty pattern", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().
			SearchPatients(gomock.Any(), models.PatientSearch{Nombre: strPtr(""), FisioID: strPtr("f-1")}).
			Return([]models.Patient{}, nil)

		rec := serve(h, http.MethodGet, "/paciente?nombre=&fisio_id=f-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing name binds NULL", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().
			SearchPatients(gomock.Any(), models.PatientSearch{FisioID: strPtr("f-1")}).
			Return([]models.Patient{}, nil)

		rec := serve(h, http.MethodGet, "/paciente?fisio_id=f-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().SearchPatients(gomock.Any(), gomock.Any()).Return(nil, backendErr)

		rec := serve(h, http.MethodGet, "/paciente?nombre=%5B&fisio_id=f-1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Error al buscar el paciente", rec.Body.String())
	})
}

func TestCreatePatient(t *testing.T) {
	body := `{"paciente_id":"p-1","nombre":"Ana","apellidos":"López","direccion":"Calle 1",
		"telefono":"600000000","fecha_nacimiento":"1990-05-01","fisio_id":"f-1"}`
	want := models.Patient{
		PacienteID:      strPtr("p-1"),
		Nombre:          strPtr("Ana"),
		Apellidos:       strPtr("López"),
		Direccion:       strPtr("Calle 1"),
		Telefono:        strPtr("600000000"),
		FechaNacimiento: strPtr("1990-05-01"),
		FisioID:         strPtr("f-1"),
	}

	t.Run("created", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().CreatePatient(gomock.Any(), want).Return(nil)

		rec := serve(h, http.MethodPost, "/new_paciente", body)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("duplicate key", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().CreatePatient(gomock.Any(), want).Return(backendErr)

		rec := serve(h, http.MethodPost, "/new_paciente", body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", rec.Body.String())
	})

	t.Run("empty object binds NULL keys", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().CreatePatient(gomock.Any(), models.Patient{}).Return(backendErr)

		rec := serve(h, http.MethodPost, "/new_paciente", `{}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Internal Server Error", rec.Body.String())
	})

	t.Run("empty body binds NULL keys", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().CreatePatient(gomock.Any(), models.Patient{}).Return(backendErr)

		rec := serve(h, http.MethodPost, "/new_paciente", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	for _, malformed := range []string{`{`, `not json`, `{"paciente_id":"p-1",}`} {
		t.Run("malformed body never reaches the database: "+malformed, func(t *testing.T) {
			h, m := newTestHandlerWithMocks(t, noAuth)
			m.passThroughFisioID()

			rec := serve(h, http.MethodPost, "/new_paciente", malformed)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "Internal Server Error", rec.Body.String())
		})
	}

	t.Run("value of the wrong type is skipped", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().
			CreatePatient(gomock.Any(), models.Patient{Nombre: strPtr("Ana"), FisioID: strPtr("f-1")}).
			Return(backendErr)

		rec := serve(h, http.MethodPost, "/new_paciente", `{"paciente_id":5,"nombre":"Ana","fisio_id":"f-1"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestUpdatePatient(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().
			UpdatePatient(gomock.Any(), models.Patient{PacienteID: strPtr("p-1"), Nombre: strPtr("Eva"), FisioID: strPtr("f-1")}).
			Return(nil)

		rec := serve(h, http.MethodPut, "/edit_paciente", `{"paciente_id":"p-1","nombre":"Eva","fisio_id":"f-1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("body scope is replaced when configured", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.auth.EXPECT().ResolveFisioID(gomock.Any(), strPtr("f-other")).Return(strPtr("uid-1"))
		m.patients.EXPECT().
			UpdatePatient(gomock.Any(), models.Patient{PacienteID: strPtr("p-1"), FisioID: strPtr("uid-1")}).
			Return(nil)

		rec := serve(h, http.MethodPut, "/edit_paciente", `{"paciente_id":"p-1","fisio_id":"f-other"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("failure", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().UpdatePatient(gomock.Any(), gomock.Any()).Return(backendErr)

		rec := serve(h, http.MethodPut, "/edit_paciente", `{"paciente_id":"p-1","fisio_id":"f-1"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestDeletePatient(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().
			DeletePatient(gomock.Any(), models.PatientKey{PacienteID: strPtr("p-1"), FisioID: strPtr("f-1")}).
			Return(nil)

		rec := serve(h, http.MethodDelete, "/delete_paciente?paciente_id=p-1&fisio_id=f-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		h, m := newTestHandlerWithMocks(t, noAuth)
		m.passThroughFisioID()
		m.patients.EXPECT().DeletePatient(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, models.PatientKey) error { return backendErr })

		rec := serve(h, http.MethodDelete, "/delete_paciente?paciente_id=p-1&fisio_id=f-1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
