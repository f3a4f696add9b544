package usecase

import (
	"context"

	"github.com/esbreenn/clinica-turnos/internal/converter"
	"github.com/esbreenn/clinica-turnos/internal/delivery/dto"
	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/domain/repository"
	"github.com/esbreenn/clinica-turnos/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReferenceUsecase serves the read-only reference lists. Results are cached in
// Redis; reference tables change rarely and a stale list is harmless.
type ReferenceUsecase interface {
	Professionals(ctx context.Context) ([]dto.ProfessionalResponse, error)
	Services(ctx context.Context) ([]dto.ServiceResponse, error)
	Branches(ctx context.Context) ([]dto.BranchResponse, error)
}

type referenceUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	referenceRepo repository.ReferenceRepository
	cache         *service.ReferenceCache
}

func NewReferenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	referenceRepo repository.ReferenceRepository,
	cache *service.ReferenceCache,
) ReferenceUsecase {
	return &referenceUsecase{
		db:            db,
		log:           log,
		referenceRepo: referenceRepo,
		cache:         cache,
	}
}

func (u *referenceUsecase) Professionals(ctx context.Context) ([]dto.ProfessionalResponse, error) {
	var cached []entity.Professional
	if u.cache.Get(ctx, service.CacheKeyProfessionals, &cached) {
		return converter.ProfessionalsToResponses(cached), nil
	}

	professionals, err := u.referenceRepo.FindProfessionals(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list profesionales: %+v", err)
		return nil, err
	}

	u.cache.Set(ctx, service.CacheKeyProfessionals, professionals)
	return converter.ProfessionalsToResponses(professionals), nil
}

func (u *referenceUsecase) Services(ctx context.Context) ([]dto.ServiceResponse, error) {
	var cached []entity.Service
	if u.cache.Get(ctx, service.CacheKeyServices, &cached) {
		return converter.ServicesToResponses(cached), nil
	}

	services, err := u.referenceRepo.FindActiveServices(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list servicios: %+v", err)
		return nil, err
	}

	u.cache.Set(ctx, service.CacheKeyServices, services)
	return converter.ServicesToResponses(services), nil
}

func (u *referenceUsecase) Branches(ctx context.Context) ([]dto.BranchResponse, error) {
	var cached []entity.Branch
	if u.cache.Get(ctx, service.CacheKeyBranches, &cached) {
		return converter.BranchesToResponses(cached), nil
	}

	branches, err := u.referenceRepo.FindActiveBranches(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list sucursales: %+v", err)
		return nil, err
	}

	u.cache.Set(ctx, service.CacheKeyBranches, branches)
	return converter.BranchesToResponses(branches), nil
}
