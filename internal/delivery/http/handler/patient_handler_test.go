package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/usecase"
	"github.com/esbreenn/clinica-turnos/pkg/response"
	"github.com/esbreenn/clinica-turnos/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type mockPatientUsecase struct {
	listFn   func(ctx context.Context, q string, limit, offset int) (*dto.PatientListResponse, error)
	getFn    func(ctx context.Context, id int64) (*dto.PatientResponse, error)
	createFn func(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	updateFn func(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	deleteFn func(ctx context.Context, id int64) error
}

var _ usecase.PatientUsecase = (*mockPatientUsecase)(nil)

func (m *mockPatientUsecase) List(ctx context.Context, q string, limit, offset int) (*dto.PatientListResponse, error) {
	return m.listFn(ctx, q, limit, offset)
}

func (m *mockPatientUsecase) Get(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	return m.getFn(ctx, id)
}

func (m *mockPatientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockPatientUsecase) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockPatientUsecase) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func newPatientTestRouter(uc usecase.PatientUsecase) *mux.Router {
	h := NewPatientHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/pacientes", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/pacientes", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/pacientes/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/pacientes/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/pacientes/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	return r
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestPatientHandlerCreate(t *testing.T) {
	uc := &mockPatientUsecase{
		createFn: func(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
			assert.Equal(t, int64(30111222), req.DNI)
			return &dto.PatientResponse{ID: 1, DNI: req.DNI, Nombre: req.Nombre, Apellido: req.Apellido}, nil
		},
	}
	router := newPatientTestRouter(uc)

	body := `{"dni": 30111222, "nombre": "Ana", "apellido": "Garcia"}`
	req := httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeResponse(t, rec).Success)
}

func TestPatientHandlerCreateDuplicateDNI(t *testing.T) {
	uc := &mockPatientUsecase{
		createFn: func(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
			return nil, usecase.ErrDuplicateDNI
		},
	}
	router := newPatientTestRouter(uc)

	body := `{"dni": 30111222, "nombre": "Ana", "apellido": "Garcia"}`
	req := httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, decodeResponse(t, rec).Success)
}

func TestPatientHandlerCreateValidation(t *testing.T) {
	called := false
	uc := &mockPatientUsecase{
		createFn: func(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
			called = true
			return nil, nil
		},
	}
	router := newPatientTestRouter(uc)

	tests := []struct {
		name string
		body string
	}{
		{"missing dni", `{"nombre": "Ana", "apellido": "Garcia"}`},
		{"missing apellido", `{"dni": 30111222, "nombre": "Ana"}`},
		{"bad fecha_nac", `{"dni": 30111222, "nombre": "Ana", "apellido": "Garcia", "fecha_nac": "12/05/1990"}`},
		{"bad email", `{"dni": 30111222, "nombre": "Ana", "apellido": "Garcia", "email": "not-an-email"}`},
		{"not json", `dni=30111222`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pacientes", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.False(t, called)
}

func TestPatientHandlerGetNotFound(t *testing.T) {
	uc := &mockPatientUsecase{
		getFn: func(ctx context.Context, id int64) (*dto.PatientResponse, error) {
			return nil, usecase.ErrPatientNotFound
		},
	}
	router := newPatientTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/pacientes/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPatientHandlerListPassesQuery(t *testing.T) {
	uc := &mockPatientUsecase{
		listFn: func(ctx context.Context, q string, limit, offset int) (*dto.PatientListResponse, error) {
			assert.Equal(t, "garcia", q)
			assert.Equal(t, 10, limit)
			assert.Equal(t, 20, offset)
			return &dto.PatientListResponse{Pacientes: []dto.PatientResponse{}, Total: 0}, nil
		},
	}
	router := newPatientTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/pacientes?q=garcia&limit=10&offset=20", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPatientHandlerDeleteNotFound(t *testing.T) {
	uc := &mockPatientUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			return usecase.ErrPatientNotFound
		},
	}
	router := newPatientTestRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/pacientes/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
