package repository

import (
	"context"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"

	"gorm.io/gorm"
)

type ReportRepository interface {
	AppointmentsPerPatient(ctx context.Context, db *gorm.DB) ([]entity.PatientAppointmentCount, error)
	// PatientsWithoutAppointmentsSince returns patients whose latest turno
	// started before the cutoff (or who never had one).
	PatientsWithoutAppointmentsSince(ctx context.Context, db *gorm.DB, cutoff time.Time) ([]entity.InactivePatient, error)
	AppointmentsPerProfessional(ctx context.Context, db *gorm.DB) ([]entity.ProfessionalLoad, error)
}
