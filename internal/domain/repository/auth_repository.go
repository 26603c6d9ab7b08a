package repository

import (
	"context"

	"smart-clinic-gateway/internal/domain/entity"
)

// LoginResult is what the backend hands back for valid credentials.
type LoginResult struct {
	User  entity.User
	Token string
}

type AuthRepository interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, form map[string]interface{}) (map[string]interface{}, error)
}
