package usecase

import (
	"context"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/domain/repository"
	"github.com/esbreenn/clinica-turnos/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type mockPatientRepository struct {
	findAllFn  func(ctx context.Context, db *gorm.DB, q string, limit, offset int) ([]entity.Patient, error)
	findByIDFn func(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	createFn   func(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	updateFn   func(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error)
	deleteFn   func(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}

var _ repository.PatientRepository = (*mockPatientRepository)(nil)

func (m *mockPatientRepository) FindAll(ctx context.Context, db *gorm.DB, q string, limit, offset int) ([]entity.Patient, error) {
	return m.findAllFn(ctx, db, q, limit, offset)
}

func (m *mockPatientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	return m.findByIDFn(ctx, db, id)
}

func (m *mockPatientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return m.createFn(ctx, db, patient)
}

func (m *mockPatientRepository) Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error) {
	return m.updateFn(ctx, db, patient)
}

func (m *mockPatientRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	return m.deleteFn(ctx, db, id)
}

type mockAppointmentRepository struct {
	findAllFn           func(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error)
	findByIDFn          func(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error)
	createWithPaymentFn func(ctx context.Context, db *gorm.DB, turno *entity.Appointment) error
	rescheduleFn        func(ctx context.Context, db *gorm.DB, id int64, r *repository.AppointmentReschedule) (*entity.Appointment, error)
	updateStatusFn      func(ctx context.Context, db *gorm.DB, id int64, estado entity.AppointmentStatus) (int64, error)
	deleteFn            func(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}

var _ repository.AppointmentRepository = (*mockAppointmentRepository)(nil)

func (m *mockAppointmentRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.AppointmentDetail, error) {
	return m.findAllFn(ctx, db, filter)
}

func (m *mockAppointmentRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Appointment, error) {
	return m.findByIDFn(ctx, db, id)
}

func (m *mockAppointmentRepository) CreateWithPayment(ctx context.Context, db *gorm.DB, turno *entity.Appointment) error {
	return m.createWithPaymentFn(ctx, db, turno)
}

func (m *mockAppointmentRepository) Reschedule(ctx context.Context, db *gorm.DB, id int64, r *repository.AppointmentReschedule) (*entity.Appointment, error) {
	return m.rescheduleFn(ctx, db, id, r)
}

func (m *mockAppointmentRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, estado entity.AppointmentStatus) (int64, error) {
	return m.updateStatusFn(ctx, db, id, estado)
}

func (m *mockAppointmentRepository) Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	return m.deleteFn(ctx, db, id)
}

type mockAuditService struct {
	calls []string
}

var _ service.AuditService = (*mockAuditService)(nil)

func (m *mockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, newValue interface{}) error {
	m.calls = append(m.calls, action)
	return nil
}

func (m *mockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, oldValue, newValue interface{}) error {
	m.calls = append(m.calls, action)
	return nil
}

func (m *mockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, oldValue interface{}) error {
	m.calls = append(m.calls, action)
	return nil
}
