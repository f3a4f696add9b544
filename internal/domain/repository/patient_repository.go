package repository

import (
	"context"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	// FindAll returns patients ordered by creado_en DESC. q, when non-empty,
	// is matched case-insensitively against nombre, apellido and dni.
	FindAll(ctx context.Context, db *gorm.DB, q string, limit, offset int) ([]entity.Patient, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	// Create inserts the patient and fills in the generated ID.
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	// Update replaces all mutable fields; returns affected rows (0 = not found).
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) (int64, error)
	// Delete hard-deletes by id; returns affected rows (0 = not found).
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
