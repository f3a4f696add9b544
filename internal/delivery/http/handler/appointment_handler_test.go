package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/usecase"
	"github.com/esbreenn/clinica-turnos/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

type mockAppointmentUsecase struct {
	listFn       func(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	createFn     func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	rescheduleFn func(ctx context.Context, id int64, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	setStatusFn  func(ctx context.Context, id int64, estado string) error
	deleteFn     func(ctx context.Context, id int64) error
}

var _ usecase.AppointmentUsecase = (*mockAppointmentUsecase)(nil)

func (m *mockAppointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	return m.listFn(ctx, filter)
}

func (m *mockAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.createFn(ctx, req)
}

func (m *mockAppointmentUsecase) Reschedule(ctx context.Context, id int64, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	return m.rescheduleFn(ctx, id, req)
}

func (m *mockAppointmentUsecase) SetStatus(ctx context.Context, id int64, estado string) error {
	return m.setStatusFn(ctx, id, estado)
}

func (m *mockAppointmentUsecase) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func newAppointmentTestRouter(uc usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(uc, validator.NewValidator())
	r := mux.NewRouter()
	r.HandleFunc("/api/turnos", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/turnos", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/turnos/{id:[0-9]+}", h.Reschedule).Methods(http.MethodPut)
	r.HandleFunc("/api/turnos/{id:[0-9]+}/estado", h.SetStatus).Methods(http.MethodPatch)
	r.HandleFunc("/api/turnos/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	return r
}

func TestAppointmentHandlerCreate(t *testing.T) {
	uc := &mockAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			assert.Equal(t, "2026-03-10 14:30:00", req.FechaHoraInicio)
			return &dto.AppointmentResponse{ID: 1, Estado: "reservado"}, nil
		},
	}
	router := newAppointmentTestRouter(uc)

	body := `{"paciente_id": 1, "profesional_id": 2, "servicio_id": 3, "sucursal_id": 1,
		"fecha_hora_inicio": "2026-03-10 14:30:00", "monto": "15000.00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/turnos", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAppointmentHandlerCreateConflict(t *testing.T) {
	uc := &mockAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrScheduleConflict
		},
	}
	router := newAppointmentTestRouter(uc)

	body := `{"paciente_id": 1, "profesional_id": 2, "servicio_id": 3, "sucursal_id": 1,
		"fecha_hora_inicio": "2026-03-10 14:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/turnos", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAppointmentHandlerCreateInvalidDateTime(t *testing.T) {
	uc := &mockAppointmentUsecase{
		createFn: func(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrInvalidDateTime
		},
	}
	router := newAppointmentTestRouter(uc)

	body := `{"paciente_id": 1, "profesional_id": 2, "servicio_id": 3, "sucursal_id": 1,
		"fecha_hora_inicio": "10/03/2026"}`
	req := httptest.NewRequest(http.MethodPost, "/api/turnos", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandlerRescheduleConflict(t *testing.T) {
	uc := &mockAppointmentUsecase{
		rescheduleFn: func(ctx context.Context, id int64, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
			assert.Equal(t, int64(5), id)
			return nil, usecase.ErrScheduleConflict
		},
	}
	router := newAppointmentTestRouter(uc)

	body := `{"profesional_id": 2, "servicio_id": 3, "sucursal_id": 1, "fecha_hora_inicio": "2026-03-10 16:00:00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/turnos/5", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAppointmentHandlerSetStatus(t *testing.T) {
	uc := &mockAppointmentUsecase{
		setStatusFn: func(ctx context.Context, id int64, estado string) error {
			assert.Equal(t, int64(5), id)
			assert.Equal(t, "confirmado", estado)
			return nil
		},
	}
	router := newAppointmentTestRouter(uc)

	req := httptest.NewRequest(http.MethodPatch, "/api/turnos/5/estado", strings.NewReader(`{"estado": "confirmado"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAppointmentHandlerSetStatusInvalid(t *testing.T) {
	uc := &mockAppointmentUsecase{
		setStatusFn: func(ctx context.Context, id int64, estado string) error {
			return usecase.ErrInvalidStatus
		},
	}
	router := newAppointmentTestRouter(uc)

	req := httptest.NewRequest(http.MethodPatch, "/api/turnos/5/estado", strings.NewReader(`{"estado": "pendiente"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAppointmentHandlerSetStatusConflict(t *testing.T) {
	uc := &mockAppointmentUsecase{
		setStatusFn: func(ctx context.Context, id int64, estado string) error {
			return usecase.ErrScheduleConflict
		},
	}
	router := newAppointmentTestRouter(uc)

	req := httptest.NewRequest(http.MethodPatch, "/api/turnos/5/estado", strings.NewReader(`{"estado": "reservado"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAppointmentHandlerDeleteNotFound(t *testing.T) {
	uc := &mockAppointmentUsecase{
		deleteFn: func(ctx context.Context, id int64) error {
			return usecase.ErrAppointmentNotFound
		},
	}
	router := newAppointmentTestRouter(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/turnos/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestParseAppointmentFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/api/turnos?profesional_id=7&estado=confirmado&desde=2026-03-01&hasta=2026-03-31%2023%3A59%3A59&dni=30111222&limit=10&offset=20", nil)

	filter, err := parseAppointmentFilter(req)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), filter.ProfesionalID)
	assert.Equal(t, entity.StatusConfirmado, filter.Estado)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *filter.Desde)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC), *filter.Hasta)
	assert.Equal(t, int64(30111222), filter.PacienteDNI)
	assert.Equal(t, 10, filter.Limit)
	assert.Equal(t, 20, filter.Offset)
}

func TestParseAppointmentFilterEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/turnos", nil)

	filter, err := parseAppointmentFilter(req)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), filter.ProfesionalID)
	assert.Equal(t, entity.AppointmentStatus(""), filter.Estado)
	assert.Nil(t, filter.Desde)
	assert.Nil(t, filter.Hasta)
}

func TestParseAppointmentFilterRejectsBadParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad profesional_id", "profesional_id=abc"},
		{"bad estado", "estado=pendiente"},
		{"bad desde", "desde=01-03-2026"},
		{"bad dni", "dni=30.111.222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/turnos?"+tt.query, nil)
			_, err := parseAppointmentFilter(req)
			assert.Error(t, err)
		})
	}
}

func TestAppointmentHandlerListBadFilter(t *testing.T) {
	uc := &mockAppointmentUsecase{
		listFn: func(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
			t.Fatal("usecase must not be called on bad filters")
			return nil, nil
		},
	}
	router := newAppointmentTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet, "/api/turnos?estado=pendiente", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
