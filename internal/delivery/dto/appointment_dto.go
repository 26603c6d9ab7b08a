package dto

import "time"

// Request DTOs

type SubmitBookingRequest struct {
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Reason string `json:"reason" validate:"required"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             string     `json:"id"`
	DoctorID       string     `json:"doctor_id"`
	DoctorName     string     `json:"doctor_name,omitempty"`
	Specialization string     `json:"specialization,omitempty"`
	PatientID      string     `json:"patient_id,omitempty"`
	PatientName    string     `json:"patient_name,omitempty"`
	PatientEmail   string     `json:"patient_email,omitempty"`
	PatientPhone   string     `json:"patient_phone,omitempty"`
	Date           string     `json:"appointment_date"`
	Time           string     `json:"appointment_time"`
	Reason         string     `json:"reason"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
