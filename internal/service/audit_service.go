package service

import (
	"context"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AuditService interface {
	Record(ctx context.Context, actor *entity.Session, action string, entityName string, entityID string, value interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

// NewAuditService builds the audit trail writer. A nil repository keeps the trail in the log only.
func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// Record stores one audit entry. Failures are logged, never returned: the
// audited operation already happened on the clinic backend.
func (s *auditService) Record(ctx context.Context, actor *entity.Session, action string, entityName string, entityID string, value interface{}) {
	auditLog := &entity.AuditLog{
		Action: action,
		Metadata: entity.JSON{
			"entity":    entityName,
			"entity_id": entityID,
			"value":     value,
		},
	}
	if actor != nil {
		auditLog.UserID = actor.User.ID.String()
		auditLog.Role = string(actor.Role)
	}

	fields := logrus.Fields{
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
		"user_id":   auditLog.UserID,
	}

	if s.auditRepo == nil {
		s.log.WithFields(fields).Info("audit")
		return
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.WithFields(fields).Warnf("Failed to create audit log: %+v", err)
	}
}
