package dto

import "github.com/shopspring/decimal"

// Request DTOs

type CreateAppointmentRequest struct {
	PacienteID      int64           `json:"paciente_id" validate:"required,min=1"`
	ProfesionalID   int64           `json:"profesional_id" validate:"required,min=1"`
	ServicioID      int64           `json:"servicio_id" validate:"required,min=1"`
	SucursalID      int64           `json:"sucursal_id" validate:"required,min=1"`
	FechaHoraInicio string          `json:"fecha_hora_inicio" validate:"required"` // Format: YYYY-MM-DD HH:MM:SS
	Monto           decimal.Decimal `json:"monto"`
	Metodo          string          `json:"metodo" validate:"omitempty,max=30"`
}

type RescheduleAppointmentRequest struct {
	ProfesionalID   int64  `json:"profesional_id" validate:"required,min=1"`
	ServicioID      int64  `json:"servicio_id" validate:"required,min=1"`
	SucursalID      int64  `json:"sucursal_id" validate:"required,min=1"`
	FechaHoraInicio string `json:"fecha_hora_inicio" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Estado string `json:"estado" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int64           `json:"id"`
	PacienteID      int64           `json:"paciente_id"`
	ProfesionalID   int64           `json:"profesional_id"`
	ServicioID      int64           `json:"servicio_id"`
	SucursalID      int64           `json:"sucursal_id"`
	FechaHoraInicio string          `json:"fecha_hora_inicio"`
	FechaHoraFin    string          `json:"fecha_hora_fin"`
	Estado          string          `json:"estado"`
	Monto           decimal.Decimal `json:"monto"`
	Metodo          string          `json:"metodo"`
	CreadoEn        string          `json:"creado_en"`
}

// AppointmentDetailResponse is a listing row joined with reference names.
type AppointmentDetailResponse struct {
	ID              int64  `json:"id"`
	Paciente        string `json:"paciente"`
	Profesional     string `json:"profesional"`
	Servicio        string `json:"servicio"`
	Sucursal        string `json:"sucursal"`
	FechaHoraInicio string `json:"fecha_hora_inicio"`
	FechaHoraFin    string `json:"fecha_hora_fin"`
	Estado          string `json:"estado"`
}

type AppointmentListResponse struct {
	Turnos []AppointmentDetailResponse `json:"turnos"`
	Total  int                         `json:"total"`
}
