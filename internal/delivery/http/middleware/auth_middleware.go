package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/usecase"
	"smart-clinic-gateway/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	SessionKey contextKey = "session"
)

// SessionAuthenticator resolves a bearer token to a live session.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*entity.Session, error)
}

type AuthMiddleware struct {
	log           *logrus.Logger
	authenticator SessionAuthenticator
}

func NewAuthMiddleware(log *logrus.Logger, authenticator SessionAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{
		log:           log,
		authenticator: authenticator,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		session, err := m.authenticator.Authenticate(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrInvalidToken):
				response.Unauthorized(w, "Invalid or expired token")
			case errors.Is(err, usecase.ErrSessionNotFound):
				response.Unauthorized(w, "Session has expired or been revoked")
			default:
				m.log.Warnf("Failed to validate session: %+v", err)
				response.InternalServerError(w, "Failed to validate token")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

// WithSession stores session in ctx.
func WithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSessionFromContext extracts the session from context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(SessionKey).(*entity.Session)
	return session, ok && session != nil
}
