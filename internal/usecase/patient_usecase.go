package usecase

import (
	"context"
	"errors"

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
	ErrPatientNotFound = errors.New("paciente not found")
	ErrDuplicateDNI    = errors.New("dni already registered")
	ErrInvalidPatient  = errors.New("invalid paciente data")
)

type PatientUsecase interface {
	List(ctx context.Context, q string, limit, offset int) (*dto.PatientListResponse, error)
	Get(ctx context.Context, id int64) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) List(ctx context.Context, q string, limit, offset int) (*dto.PatientListResponse, error) {
	if limit <= 0 {
		limit = entity.DefaultPageSize
	}
	if limit > entity.MaxPageSize {
		limit = entity.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	patients, err := u.patientRepo.FindAll(ctx, u.db, q, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list pacientes: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Pacientes: converter.PatientsToResponses(patients),
		Total:     len(patients),
	}, nil
}

func (u *patientUsecase) Get(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient := converter.PatientFromRequest(req)
	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if pgrepo.IsUniqueViolation(err, "dni") {
			return nil, ErrDuplicateDNI
		}
		if pgrepo.IsConstraintViolation(err) {
			return nil, ErrInvalidPatient
		}
		u.log.Warnf("Failed to create paciente: %+v", err)
		return nil, err
	}

	// Re-read so the response carries every server-assigned field.
	created, err := u.patientRepo.FindByID(ctx, tx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to reload paciente %d: %+v", patient.ID, err)
		return nil, err
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogCreate(ctx, tx, actorID, entity.AuditActionPatientCreate, "paciente", patient.ID, created)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit paciente create: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(created), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	old, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return nil, err
	}
	if old == nil {
		return nil, ErrPatientNotFound
	}

	patient := converter.PatientFromRequest(req)
	patient.ID = id

	affected, err := u.patientRepo.Update(ctx, tx, patient)
	if err != nil {
		if pgrepo.IsUniqueViolation(err, "dni") {
			return nil, ErrDuplicateDNI
		}
		if pgrepo.IsConstraintViolation(err) {
			return nil, ErrInvalidPatient
		}
		u.log.Warnf("Failed to update paciente %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPatientNotFound
	}

	updated, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to reload paciente %d: %+v", id, err)
		return nil, err
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogUpdate(ctx, tx, actorID, entity.AuditActionPatientUpdate, "paciente", id, old, updated)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit paciente update: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(updated), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	old, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find paciente %d: %+v", id, err)
		return err
	}
	if old == nil {
		return ErrPatientNotFound
	}

	affected, err := u.patientRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete paciente %d: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	actorID := middleware.ActorID(ctx)
	_ = u.auditService.LogDelete(ctx, tx, actorID, entity.AuditActionPatientDelete, "paciente", id, old)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit paciente delete: %+v", err)
		return err
	}

	return nil
}
