package repository

import (
	"context"
	"time"

	"smart-clinic-gateway/internal/domain/entity"
)

type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error
	FindByID(ctx context.Context, sessionID string) (*entity.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
