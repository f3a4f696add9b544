package repository

import (
	"context"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"

	"gorm.io/gorm"
)

// AppointmentReschedule carries the mutable slot fields of a reprogram call.
type AppointmentReschedule struct {
	ProfesionalID   int64
	ServicioID      int64
	SucursalID      int64
	FechaHoraInicio time.Time
}

type AppointmentRepository interface {
	// FindAll returns joined listing rows, newest start time first.
	// The filter must already be normalized.
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error)
	// CreateWithPayment invokes sp_crear_turno_con_pago, which inserts the
	// turno plus its payment record, computes fecha_hora_fin and enforces the
	// no-overlap invariant. The returned row fills the remaining fields of
	// turno. A scheduling clash surfaces as a store error classified by pgerr.
	CreateWithPayment(ctx context.Context, db *gorm.DB, turno *entity.Appointment) error
	// Reschedule invokes sp_reprogramar_turno, which re-runs the overlap check
	// for the new slot. Returns the updated row, or nil when id is absent.
	Reschedule(ctx context.Context, db *gorm.DB, id int64, r *AppointmentReschedule) (*entity.Appointment, error)
	// UpdateStatus writes estado unconditionally; returns affected rows.
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, estado entity.AppointmentStatus) (int64, error)
	// Delete hard-deletes by id; returns affected rows.
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
