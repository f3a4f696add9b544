package repository

import (
	"context"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	domainRepo "github.com/esbreenn/clinica-turnos/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

const appointmentColumns = `id, paciente_id, profesional_id, servicio_id, sucursal_id,
	fecha_hora_inicio, fecha_hora_fin, estado, monto, metodo, creado_en`

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error) {
	query, args := buildAppointmentListQuery(filter)
	var rows []entity.AppointmentDetail
	err := db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error) {
	var turno entity.Appointment
	res := db.WithContext(ctx).
		Raw(`SELECT `+appointmentColumns+` FROM turnos WHERE id = ?`, id).
		Scan(&turno)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &turno, nil
}

// CreateWithPayment delegates insertion entirely to the stored procedure. The
// procedure computes fecha_hora_fin from the service duration, registers the
// payment and raises on an agenda clash; it returns the created turno row.
func (r *appointmentRepository) CreateWithPayment(ctx context.Context, db *gorm.DB, turno *entity.Appointment) error {
	return db.WithContext(ctx).Raw(`
		SELECT `+appointmentColumns+`
		FROM sp_crear_turno_con_pago(?, ?, ?, ?, ?, ?, ?)
	`, turno.PacienteID, turno.ProfesionalID, turno.ServicioID, turno.SucursalID,
		turno.FechaHoraInicio, turno.Monto, turno.Metodo).
		Scan(turno).Error
}

func (r *appointmentRepository) Reschedule(ctx context.Context, db *gorm.DB, id int64, reprog *domainRepo.AppointmentReschedule) (*entity.Appointment, error) {
	var turno entity.Appointment
	res := db.WithContext(ctx).Raw(`
		SELECT `+appointmentColumns+`
		FROM sp_reprogramar_turno(?, ?, ?, ?, ?)
	`, id, reprog.ProfesionalID, reprog.ServicioID, reprog.SucursalID, reprog.FechaHoraInicio).
		Scan(&turno)
	if res.Error != nil {
		return nil, res.Error
	}
	// The procedure returns an empty set when the turno does not exist.
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &turno, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, estado entity.AppointmentStatus) (int64, error) {
	res := db.WithContext(ctx).Exec(`UPDATE turnos SET estado = ? WHERE id = ?`, estado, id)
	return res.RowsAffected, res.Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	res := db.WithContext(ctx).Exec(`DELETE FROM turnos WHERE id = ?`, id)
	return res.RowsAffected, res.Error
}
