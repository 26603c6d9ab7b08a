package entity

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// AppointmentStatus mirrors the statuses the clinic backend reports.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusCompleted:
		return true
	default:
		return false
	}
}

// AppointmentRequest is built only after a slot resolved and lives until submission.
type AppointmentRequest struct {
	DoctorID int    `json:"doctor"`
	Date     string `json:"appointment_date"`
	Time     string `json:"appointment_time"`
	Reason   string `json:"reason"`
}

// Appointment is what the backend returns for a booked appointment.
type Appointment struct {
	ID          ID                `json:"id"`
	Doctor      AppointmentParty  `json:"doctor"`
	DoctorName  string            `json:"doctor_name,omitempty"`
	Patient     AppointmentParty  `json:"patient"`
	PatientName string            `json:"patient_name,omitempty"`
	Date        string            `json:"appointment_date"`
	Time        string            `json:"appointment_time"`
	Reason      string            `json:"reason"`
	Status      AppointmentStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	CreatedAt   *time.Time        `json:"created_at,omitempty"`
	UpdatedAt   *time.Time        `json:"updated_at,omitempty"`
}

// AppointmentParty is the doctor or patient side of an appointment.
// The backend sends either a bare id or the expanded profile with its user.
type AppointmentParty struct {
	ID             ID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Specialization string
}

func (p *AppointmentParty) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		*p = AppointmentParty{}
		return p.ID.UnmarshalJSON(data)
	}

	var expanded struct {
		ID   ID `json:"id"`
		User struct {
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Email     string `json:"email"`
			Phone     string `json:"phone"`
		} `json:"user"`
		Specialization string `json:"specialization"`
	}
	if err := json.Unmarshal(data, &expanded); err != nil {
		return err
	}

	*p = AppointmentParty{
		ID:             expanded.ID,
		FirstName:      expanded.User.FirstName,
		LastName:       expanded.User.LastName,
		Email:          expanded.User.Email,
		Phone:          expanded.User.Phone,
		Specialization: expanded.Specialization,
	}
	return nil
}

func (p AppointmentParty) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
