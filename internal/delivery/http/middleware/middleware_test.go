package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator struct {
	session *entity.Session
	err     error
}

func (s stubAuthenticator) Authenticate(ctx context.Context, accessToken string) (*entity.Session, error) {
	if accessToken != "good" {
		return nil, usecase.ErrInvalidToken
	}
	return s.session, s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sessionEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := GetSessionFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		io.WriteString(w, session.ID)
	})
}

func TestAuthenticate(t *testing.T) {
	session := &entity.Session{ID: "sess-1", Role: entity.RolePatient, BackendToken: "t"}

	tests := []struct {
		name   string
		header string
		auth   stubAuthenticator
		status int
		body   string
	}{
		{"missing header", "", stubAuthenticator{session: session}, http.StatusUnauthorized, ""},
		{"wrong scheme", "Token good", stubAuthenticator{session: session}, http.StatusUnauthorized, ""},
		{"invalid token", "Bearer bad", stubAuthenticator{session: session}, http.StatusUnauthorized, ""},
		{"revoked", "Bearer good", stubAuthenticator{err: usecase.ErrSessionNotFound}, http.StatusUnauthorized, ""},
		{"store down", "Bearer good", stubAuthenticator{err: assert.AnError}, http.StatusInternalServerError, ""},
		{"ok", "Bearer good", stubAuthenticator{session: session}, http.StatusOK, "sess-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(quietLogger(), tt.auth)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			mw.Authenticate(sessionEcho()).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		name    string
		session *entity.Session
		guard   func(http.Handler) http.Handler
		status  int
	}{
		{"no session", nil, RequirePatient, http.StatusUnauthorized},
		{"patient on patient route", &entity.Session{Role: entity.RolePatient}, RequirePatient, http.StatusNoContent},
		{"doctor on patient route", &entity.Session{Role: entity.RoleDoctor}, RequirePatient, http.StatusForbidden},
		{"doctor on doctor route", &entity.Session{Role: entity.RoleDoctor}, RequireDoctor, http.StatusNoContent},
		{"admin on admin route", &entity.Session{Role: entity.RoleAdmin}, RequireAdmin, http.StatusNoContent},
		{"admin on admin or doctor route", &entity.Session{Role: entity.RoleAdmin}, RequireAdminOrDoctor, http.StatusNoContent},
		{"patient on admin route", &entity.Session{Role: entity.RolePatient}, RequireAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.session != nil {
				req = req.WithContext(WithSession(req.Context(), tt.session))
			}
			rec := httptest.NewRecorder()

			tt.guard(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	t.Run("wildcard", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		NewCORSMiddleware([]string{"*"}).Handle(next).ServeHTTP(rec, req)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("listed origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://clinic.example")
		NewCORSMiddleware([]string{"https://clinic.example"}).Handle(next).ServeHTTP(rec, req)
		assert.Equal(t, "https://clinic.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		NewCORSMiddleware([]string{"https://clinic.example"}).Handle(next).ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		NewCORSMiddleware(nil).Handle(http.NotFoundHandler()).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
