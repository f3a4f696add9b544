package repository

import (
	"context"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	domainRepo "github.com/esbreenn/clinica-turnos/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) AppointmentsPerPatient(ctx context.Context, db *gorm.DB) ([]entity.PatientAppointmentCount, error) {
	var rows []entity.PatientAppointmentCount
	err := db.WithContext(ctx).Raw(`
		SELECT p.nombre AS paciente,
		       p.apellido,
		       COUNT(t.id) AS total_turnos
		FROM pacientes p
		INNER JOIN turnos t ON t.paciente_id = p.id
		GROUP BY p.id, p.nombre, p.apellido
		ORDER BY total_turnos DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) PatientsWithoutAppointmentsSince(ctx context.Context, db *gorm.DB, cutoff time.Time) ([]entity.InactivePatient, error) {
	var rows []entity.InactivePatient
	err := db.WithContext(ctx).Raw(`
		SELECT nombre, apellido
		FROM pacientes
		WHERE id NOT IN (
			SELECT DISTINCT paciente_id
			FROM turnos
			WHERE fecha_hora_inicio > ?
		)
	`, cutoff).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) AppointmentsPerProfessional(ctx context.Context, db *gorm.DB) ([]entity.ProfessionalLoad, error) {
	var rows []entity.ProfessionalLoad
	err := db.WithContext(ctx).Raw(`
		SELECT pr.nombre AS profesional,
		       pr.especialidad,
		       COUNT(t.id) AS total_turnos
		FROM profesionales pr
		LEFT JOIN turnos t ON t.profesional_id = pr.id
		GROUP BY pr.id, pr.nombre, pr.especialidad
		ORDER BY total_turnos DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
