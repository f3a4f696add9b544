package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/converter"
	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/delivery/http/middleware"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/domain/repository"
	pgrepo "github.com/esbreenn/clinica-turnos/internal/repository"
	"github.com/esbreenn/clinica-turnos/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("turno not found")
	ErrScheduleConflict    = errors.New("conflicto de agenda")
	ErrInvalidAppointment  = errors.New("invalid turno data")
	ErrInvalidStatus       = errors.New("invalid estado value")
	ErrInvalidDateTime     = errors.New("invalid datetime, use YYYY-MM-DD HH:MM:SS")
)

const defaultPaymentMethod = "efectivo"

type AppointmentUsecase interface {
	List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
	Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, id int64, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	SetStatus(ctx context.Context, id int64, estado string) error
	Delete(ctx context.Context, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	filter.Normalize()

	rows, err := u.appointmentRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list turnos: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Turnos: converter.AppointmentDetailsToResponses(rows),
		Total:  len(rows),
	}, nil
}

// Create delegates to sp_crear_turno_con_pago. The procedure owns end-time
// computation and overlap enforcement; here we only map its outcome.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	inicio, err := parseDateTime(req.FechaHoraInicio)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	metodo := req.Metodo
	if metodo == "" {
		metodo = defaultPaymentMethod
	}
	monto := req.Monto
	if monto.IsNegative() {
		return nil, ErrInvalidAppointment
	}

	turno := &entity.Appointment{
		PacienteID:      req.PacienteID,
		ProfesionalID:   req.ProfesionalID,
		ServicioID:      req.ServicioID,
		SucursalID:      req.SucursalID,
		FechaHoraInicio: inicio,
		Monto:           monto,
		Metodo:          metodo,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.CreateWithPayment(ctx, tx, turno); err != nil {
		if pgrepo.IsScheduleConflict(err) {
			return nil, ErrScheduleConflict
		}
		u.log.Warnf("Failed to create turno: %+v", err)
		return nil, ErrInvalidAppointment
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionAppointmentCreate, "turno", turno.ID, turno)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit turno create: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(turno), nil
}

// Reschedule delegates to sp_reprogramar_turno, which re-runs the overlap
// check against the new slot.
func (u *appointmentUsecase) Reschedule(ctx context.Context, id int64, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	inicio, err := parseDateTime(req.FechaHoraInicio)
	if err != nil {
		return nil, ErrInvalidDateTime
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	old, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find turno %d: %+v", id, err)
		return nil, err
	}
	if old == nil {
		return nil, ErrAppointmentNotFound
	}

	updated, err := u.appointmentRepo.Reschedule(ctx, tx, id, &repository.AppointmentReschedule{
		ProfesionalID:   req.ProfesionalID,
		ServicioID:      req.ServicioID,
		SucursalID:      req.SucursalID,
		FechaHoraInicio: inicio,
	})
	if err != nil {
		if pgrepo.IsScheduleConflict(err) {
			return nil, ErrScheduleConflict
		}
		u.log.Warnf("Failed to reschedule turno %d: %+v", id, err)
		return nil, ErrInvalidAppointment
	}
	if updated == nil {
		return nil, ErrAppointmentNotFound
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionAppointmentResch, "turno", id, old, updated)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit turno reschedule: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(updated), nil
}

// SetStatus writes estado unconditionally: any status may follow any other.
// The only gate is membership in the five-value enum.
func (u *appointmentUsecase) SetStatus(ctx context.Context, id int64, estado string) error {
	status := entity.AppointmentStatus(estado)
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Re-activating a cancelled or missed turno re-enters the professional's
	// agenda, so the exclusion constraint can fire here too.
	affected, err := u.appointmentRepo.UpdateStatus(ctx, tx, id, status)
	if err != nil {
		if pgrepo.IsScheduleConflict(err) {
			return ErrScheduleConflict
		}
		u.log.Warnf("Failed to update estado for turno %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionAppointmentStatus, "turno", id, nil, map[string]interface{}{"estado": estado})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit estado update: %+v", err)
		return err
	}

	return nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	old, err := u.appointmentRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find turno %d: %+v", id, err)
		return err
	}
	if old == nil {
		return ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete turno %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionAppointmentDelete, "turno", id, old)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit turno delete: %+v", err)
		return err
	}

	return nil
}

// parseDateTime accepts the wire format "2006-01-02 15:04:05" with RFC3339 as
// a fallback for API clients that send JSON timestamps.
func parseDateTime(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02 15:04", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
