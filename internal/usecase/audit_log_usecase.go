package usecase

import (
	"context"
	"errors"

	"smart-clinic-gateway/internal/converter"
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const defaultAuditLogLimit = 100

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
	ErrAuditDisabled    = errors.New("audit trail storage is not configured")
)

type AuditLogUsecase interface {
	GetAllAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

// NewAuditLogUsecase accepts a nil repository when the audit database is disabled.
func NewAuditLogUsecase(
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// GetAllAuditLogs clamps limit to (0, 100]; the response carries the limit applied.
func (u *auditLogUsecase) GetAllAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	if u.auditLogRepo == nil {
		return nil, ErrAuditDisabled
	}
	if limit <= 0 || limit > defaultAuditLogLimit {
		limit = defaultAuditLogLimit
	}

	logs, err := u.auditLogRepo.FindAll(ctx, limit)
	if err != nil {
		u.log.Warnf("Failed to find all audit logs: %+v", err)
		return nil, err
	}

	return &dto.AuditLogListResponse{
		Logs:  converter.AuditLogsToResponses(logs),
		Total: len(logs),
		Limit: limit,
	}, nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	if u.auditLogRepo == nil {
		return nil, ErrAuditDisabled
	}

	auditLog, err := u.auditLogRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find audit log %d: %+v", id, err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
