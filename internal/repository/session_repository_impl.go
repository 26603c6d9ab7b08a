package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"smart-clinic-gateway/internal/domain/entity"
	domainRepo "smart-clinic-gateway/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	redisClient *redis.Client
}

func NewSessionRepository(redisClient *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{redisClient: redisClient}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return r.redisClient.Set(ctx, sessionKey(session.ID), payload, ttl).Err()
}

// FindByID returns nil without error when the session expired or was revoked.
func (r *sessionRepository) FindByID(ctx context.Context, sessionID string) (*entity.Session, error) {
	payload, err := r.redisClient.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.redisClient.Del(ctx, sessionKey(sessionID)).Err()
}
