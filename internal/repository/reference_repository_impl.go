package repository

import (
	"context"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	domainRepo "github.com/esbreenn/clinica-turnos/internal/domain/repository"

	"gorm.io/gorm"
)

type referenceRepository struct{}

func NewReferenceRepository() domainRepo.ReferenceRepository {
	return &referenceRepository{}
}

func (r *referenceRepository) FindProfessionals(ctx context.Context, db *gorm.DB) ([]entity.Professional, error) {
	var professionals []entity.Professional
	err := db.WithContext(ctx).
		Raw(`SELECT id, nombre, especialidad FROM profesionales ORDER BY nombre`).
		Scan(&professionals).Error
	if err != nil {
		return nil, err
	}
	return professionals, nil
}

func (r *referenceRepository) FindActiveServices(ctx context.Context, db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.WithContext(ctx).
		Raw(`SELECT id, nombre, duracion_min, precio, activo FROM servicios WHERE activo = true ORDER BY nombre`).
		Scan(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *referenceRepository) FindActiveBranches(ctx context.Context, db *gorm.DB) ([]entity.Branch, error) {
	var branches []entity.Branch
	err := db.WithContext(ctx).
		Raw(`SELECT id, nombre, direccion, activo FROM sucursales WHERE activo = true ORDER BY nombre`).
		Scan(&branches).Error
	if err != nil {
		return nil, err
	}
	return branches, nil
}
