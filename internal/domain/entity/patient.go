package entity

import "time"

// PatientProfile is the medical profile the clinic backend keeps for a patient account.
type PatientProfile struct {
	ID                   ID          `json:"id"`
	Allergies            string      `json:"allergies,omitempty"`
	BloodType            string      `json:"blood_type,omitempty"`
	EmergencyContact     string      `json:"emergency_contact,omitempty"`
	EmergencyContactName string      `json:"emergency_contact_name,omitempty"`
	MedicalHistory       string      `json:"medical_history,omitempty"`
	User                 PatientUser `json:"user"`
	CreatedAt            *time.Time  `json:"created_at,omitempty"`
	UpdatedAt            *time.Time  `json:"updated_at,omitempty"`
}

type PatientUser struct {
	ID             ID     `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"`
	Gender         string `json:"gender,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	PatientID      ID     `json:"patient_id,omitempty"`
	IsActive       bool   `json:"is_active"`
}

// PatientProfileUpdate is the body of PUT /patients/me/. Names and email are always sent.
type PatientProfileUpdate struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Email                string `json:"email"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
	DateOfBirth          string `json:"date_of_birth,omitempty"`
	Gender               string `json:"gender,omitempty"`
	EmergencyContact     string `json:"emergency_contact,omitempty"`
	EmergencyContactName string `json:"emergency_contact_name,omitempty"`
	MedicalHistory       string `json:"medical_history,omitempty"`
	Allergies            string `json:"allergies,omitempty"`
	BloodType            string `json:"blood_type,omitempty"`
}
