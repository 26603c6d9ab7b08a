package entity

import "strings"

// Role is the user_type the clinic backend assigns to an account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// ParseRole maps a backend user_type to a Role. Staff accounts count as admin.
// Unknown values fall back to defaultRole, or return false when no default is configured.
func ParseRole(userType string, defaultRole Role) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(userType)) {
	case "admin", "staff":
		return RoleAdmin, true
	case "doctor":
		return RoleDoctor, true
	case "patient":
		return RolePatient, true
	}
	if defaultRole.Valid() {
		return defaultRole, true
	}
	return "", false
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDoctor || r == RolePatient
}

// DashboardPath is where a freshly logged-in user lands.
func (r Role) DashboardPath() string {
	switch r {
	case RoleAdmin:
		return "/dashboards/admin-dashboard"
	case RoleDoctor:
		return "/dashboards/doctor-dashboard"
	case RolePatient:
		return "/dashboards/patient-dashboard"
	default:
		return "/auth/login"
	}
}
