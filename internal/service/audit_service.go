package service

import (
	"context"

	"turnos-api/internal/domain/entity"
	"turnos-api/internal/domain/repository"
	"turnos-api/internal/requestid"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	// LogCreate must be called with the transaction that performed the write
	// so the audit row commits or rolls back with it.
	LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, action string, entityName string, entityID int, newValue interface{}) error {
	auditLog := &entity.AuditLog{
		Action:    action,
		RequestID: requestid.FromContext(ctx),
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"new_value": newValue,
		},
	}

	if err := s.auditRepo.Create(ctx, tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
