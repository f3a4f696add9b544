package service

import (
	"context"
	"fmt"

	"github.com/esbreenn/clinica-turnos/internal/domain/entity"
	"github.com/esbreenn/clinica-turnos/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who changed what. Entity IDs are int64 for clinical
// records and uuid for staff accounts, so entityID is accepted as interface{}
// and stored as its string form.
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, oldValue interface{}) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) record(tx *gorm.DB, userID *uuid.UUID, action, entityName string, entityID interface{}, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": fmt.Sprint(entityID),
		"old_value": oldValue,
		"new_value": newValue,
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, newValue interface{}) error {
	return s.record(tx, userID, action, entityName, entityID, nil, newValue)
}

func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, oldValue, newValue interface{}) error {
	return s.record(tx, userID, action, entityName, entityID, oldValue, newValue)
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID interface{}, oldValue interface{}) error {
	return s.record(tx, userID, action, entityName, entityID, oldValue, nil)
}
