package usecase

import (
	"context"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// inactivityWindow is how far back a patient may go without a turno before
// showing up in the inactivity report.
const inactivityWindow = 30 * 24 * time.Hour

// ReportUsecase runs the analytical projections. Rows are returned as-is:
// these are pure read views with no delivery-side shaping to do.
type ReportUsecase interface {
	AppointmentsPerPatient(ctx context.Context) ([]entity.PatientAppointmentCount, error)
	InactivePatients(ctx context.Context) ([]entity.InactivePatient, error)
	AppointmentsPerProfessional(ctx context.Context) ([]entity.ProfessionalLoad, error)
}

type reportUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	reportRepo repository.ReportRepository
}

func NewReportUsecase(db *gorm.DB, log *logrus.Logger, reportRepo repository.ReportRepository) ReportUsecase {
	return &reportUsecase{
		db:         db,
		log:        log,
		reportRepo: reportRepo,
	}
}

func (u *reportUsecase) AppointmentsPerPatient(ctx context.Context) ([]entity.PatientAppointmentCount, error) {
	rows, err := u.reportRepo.AppointmentsPerPatient(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to run turnos_por_paciente report: %+v", err)
		return nil, err
	}
	return rows, nil
}

func (u *reportUsecase) InactivePatients(ctx context.Context) ([]entity.InactivePatient, error) {
	cutoff := time.Now().Add(-inactivityWindow)
	rows, err := u.reportRepo.PatientsWithoutAppointmentsSince(ctx, u.db, cutoff)
	if err != nil {
		u.log.Warnf("Failed to run pacientes_sin_turnos_recientes report: %+v", err)
		return nil, err
	}
	return rows, nil
}

func (u *reportUsecase) AppointmentsPerProfessional(ctx context.Context) ([]entity.ProfessionalLoad, error) {
	rows, err := u.reportRepo.AppointmentsPerProfessional(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to run turnos_por_profesional report: %+v", err)
		return nil, err
	}
	return rows, nil
}
