package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus is the estado of a turno. There is no enforced transition
// graph: any status may follow any other (product decision, not an oversight).
type AppointmentStatus string

const (
	StatusReservado  AppointmentStatus = "reservado"
	StatusConfirmado AppointmentStatus = "confirmado"
	StatusAtendido   AppointmentStatus = "atendido"
	StatusCancelado  AppointmentStatus = "cancelado"
	StatusAusente    AppointmentStatus = "ausente"
)

// ValidStatuses lists every admissible estado value, in lifecycle order.
var ValidStatuses = []AppointmentStatus{
	StatusReservado,
	StatusConfirmado,
	StatusAtendido,
	StatusCancelado,
	StatusAusente,
}

// IsValid reports whether s is one of the five admissible estados.
func (s AppointmentStatus) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Appointment represents a turno (table turnos). FechaHoraFin is computed by
// the stored procedures from the service duration; it is never written here.
type Appointment struct {
	ID              int64             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PacienteID      int64             `gorm:"column:paciente_id;not null;index" json:"paciente_id"`
	ProfesionalID   int64             `gorm:"column:profesional_id;not null;index" json:"profesional_id"`
	ServicioID      int64             `gorm:"column:servicio_id;not null" json:"servicio_id"`
	SucursalID      int64             `gorm:"column:sucursal_id;not null" json:"sucursal_id"`
	FechaHoraInicio time.Time         `gorm:"column:fecha_hora_inicio;not null;index" json:"fecha_hora_inicio"`
	FechaHoraFin    time.Time         `gorm:"column:fecha_hora_fin;not null" json:"fecha_hora_fin"`
	Estado          AppointmentStatus `gorm:"column:estado;type:varchar(20);not null;default:'reservado'" json:"estado"`
	Monto           decimal.Decimal   `gorm:"column:monto;type:decimal(10,2);not null;default:0" json:"monto"`
	Metodo          string            `gorm:"column:metodo;type:varchar(30);not null;default:'efectivo'" json:"metodo"`
	CreadoEn        time.Time         `gorm:"column:creado_en;autoCreateTime" json:"creado_en"`
}

func (Appointment) TableName() string {
	return "turnos"
}

// AppointmentDetail is the listing projection joined with the reference tables.
type AppointmentDetail struct {
	ID              int64             `json:"id"`
	Paciente        string            `json:"paciente"`
	Profesional     string            `json:"profesional"`
	Servicio        string            `json:"servicio"`
	Sucursal        string            `json:"sucursal"`
	FechaHoraInicio time.Time         `json:"fecha_hora_inicio"`
	FechaHoraFin    time.Time         `json:"fecha_hora_fin"`
	Estado          AppointmentStatus `json:"estado"`
}
