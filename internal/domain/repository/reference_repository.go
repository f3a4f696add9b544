package repository

import (
	"context"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"

	"gorm.io/gorm"
)

// ReferenceRepository reads the pre-existing reference tables. Nothing here is
// ever written by this service.
type ReferenceRepository interface {
	FindProfessionals(ctx context.Context, db *gorm.DB) ([]entity.Professional, error)
	FindActiveServices(ctx context.Context, db *gorm.DB) ([]entity.Service, error)
	FindActiveBranches(ctx context.Context, db *gorm.DB) ([]entity.Branch, error)
}
