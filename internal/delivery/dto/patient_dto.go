package dto

// Request DTOs

type UpdatePatientProfileRequest struct {
	FirstName            string `json:"first_name" validate:"required,min=2"`
	LastName             string `json:"last_name" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"phone" validate:"omitempty,numeric,len=11"`
	Address              string `json:"address" validate:"omitempty,max=255"`
	DateOfBirth          string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender               string `json:"gender" validate:"omitempty,oneof=M F"`
	EmergencyContact     string `json:"emergency_contact" validate:"omitempty,numeric,len=11"`
	EmergencyContactName string `json:"emergency_contact_name" validate:"omitempty,max=100"`
	MedicalHistory       string `json:"medical_history" validate:"omitempty"`
	Allergies            string `json:"allergies" validate:"omitempty"`
	BloodType            string `json:"blood_type" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

// Response DTOs

type PatientProfileResponse struct {
	ID                   string `json:"id"`
	UserID               string `json:"user_id"`
	Username             string `json:"username"`
	Email                string `json:"email"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	FullName             string `json:"full_name"`
	Phone                string `json:"phone,omitempty"`
	Address              string `json:"address,omitempty"`
	DateOfBirth          string `json:"date_of_birth,omitempty"`
	Gender               string `json:"gender,omitempty"`
	ProfilePicture       string `json:"profile_picture,omitempty"`
	BloodType            string `json:"blood_type,omitempty"`
	Allergies            string `json:"allergies,omitempty"`
	MedicalHistory       string `json:"medical_history,omitempty"`
	EmergencyContact     string `json:"emergency_contact,omitempty"`
	EmergencyContactName string `json:"emergency_contact_name,omitempty"`
}
