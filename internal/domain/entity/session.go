package entity

import "time"

// Session is the server-side state of a logged-in gateway user.
// It replaces the token/user pair the browser used to keep in local storage.
type Session struct {
	ID           string    `json:"id"`
	User         User      `json:"user"`
	Role         Role      `json:"role"`
	BackendToken string    `json:"backend_token"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.BackendToken != ""
}

func (s *Session) HasRole(role Role) bool {
	return s != nil && s.Role == role
}
