package entity

import "time"

// AppointmentFilter is a domain-level filter for querying turnos.
// Zero values mean "no constraint"; predicates are ANDed together.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	ProfesionalID int64             // exact match
	Estado        AppointmentStatus // exact match
	Desde         *time.Time        // fecha_hora_inicio >= Desde (inclusive)
	Hasta         *time.Time        // fecha_hora_inicio <= Hasta (inclusive)
	PacienteDNI   int64             // exact match, joined through pacientes
	Limit         int
	Offset        int
}

const (
	// DefaultPageSize applies when the caller sends no limit (or a non-positive one).
	DefaultPageSize = 50
	// MaxPageSize caps caller-supplied limits server-side.
	MaxPageSize = 200
)

// Normalize clamps pagination values into the allowed range.
func (f *AppointmentFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
