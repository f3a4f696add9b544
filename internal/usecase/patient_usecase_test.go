package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestPatientUsecaseListClampsPagination(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockPatientRepository{
		findAllFn: func(ctx context.Context, db *gorm.DB, q string, limit, offset int) ([]entity.Patient, error) {
			gotLimit, gotOffset = limit, offset
			return nil, nil
		},
	}
	uc := NewPatientUsecase(nil, newTestLogger(), repo, &mockAuditService{})

	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, entity.DefaultPageSize, 0},
		{"cap", 10000, 0, entity.MaxPageSize, 0},
		{"negative offset", 10, -1, 10, 0},
		{"passthrough", 25, 75, 25, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.List(context.Background(), "", tt.limit, tt.offset)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
			assert.Equal(t, tt.wantOffset, gotOffset)
		})
	}
}

func TestPatientUsecaseList(t *testing.T) {
	birthDate := time.Date(1990, 5, 12, 0, 0, 0, 0, time.UTC)
	repo := &mockPatientRepository{
		findAllFn: func(ctx context.Context, db *gorm.DB, q string, limit, offset int) ([]entity.Patient, error) {
			assert.Equal(t, "garcia", q)
			return []entity.Patient{
				{ID: 1, DNI: 30111222, Nombre: "Ana", Apellido: "Garcia", FechaNac: &birthDate},
				{ID: 2, DNI: 28999000, Nombre: "Luis", Apellido: "Garcia"},
			}, nil
		},
	}
	uc := NewPatientUsecase(nil, newTestLogger(), repo, &mockAuditService{})

	res, err := uc.List(context.Background(), "garcia", 50, 0)

	assert.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Pacientes, 2)
	assert.Equal(t, int64(30111222), res.Pacientes[0].DNI)
	if assert.NotNil(t, res.Pacientes[0].FechaNac) {
		assert.Equal(t, "1990-05-12", *res.Pacientes[0].FechaNac)
	}
	assert.Nil(t, res.Pacientes[1].FechaNac)
}

func TestPatientUsecaseListError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockPatientRepository{
		findAllFn: func(ctx context.Context, db *gorm.DB, q string, limit, offset int) ([]entity.Patient, error) {
			return nil, repoErr
		},
	}
	uc := NewPatientUsecase(nil, newTestLogger(), repo, &mockAuditService{})

	res, err := uc.List(context.Background(), "", 0, 0)

	assert.Nil(t, res)
	assert.Equal(t, repoErr, err)
}

func TestPatientUsecaseGet(t *testing.T) {
	repo := &mockPatientRepository{
		findByIDFn: func(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
			assert.Equal(t, int64(42), id)
			return &entity.Patient{ID: 42, DNI: 30111222, Nombre: "Ana", Apellido: "Garcia"}, nil
		},
	}
	uc := NewPatientUsecase(nil, newTestLogger(), repo, &mockAuditService{})

	res, err := uc.Get(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, "Ana", res.Nombre)
}

func TestPatientUsecaseGetNotFound(t *testing.T) {
	repo := &mockPatientRepository{
		findByIDFn: func(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
			return nil, nil
		},
	}
	uc := NewPatientUsecase(nil, newTestLogger(), repo, &mockAuditService{})

	res, err := uc.Get(context.Background(), 42)

	assert.Nil(t, res)
	assert.Equal(t, ErrPatientNotFound, err)
}
