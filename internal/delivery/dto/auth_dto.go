package dto

// Request DTOs

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterPatientRequest struct {
	Username             string `json:"username" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	Password2            string `json:"password2" validate:"required,eqfield=Password"`
	FirstName            string `json:"first_name" validate:"required"`
	LastName             string `json:"last_name" validate:"required"`
	Phone                string `json:"phone" validate:"required,numeric,len=11"`
	Address              string `json:"address" validate:"required"`
	DateOfBirth          string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender               string `json:"gender" validate:"required,oneof=M F"`
	MedicalHistory       string `json:"medical_history" validate:"omitempty"`
	Allergies            string `json:"allergies" validate:"omitempty"`
	EmergencyContact     string `json:"emergency_contact" validate:"required,numeric,len=11"`
	EmergencyContactName string `json:"emergency_contact_name" validate:"required"`
	BloodType            string `json:"blood_type" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
}

type RegisterDoctorRequest struct {
	Username        string               `json:"username" validate:"required"`
	Email           string               `json:"email" validate:"required,email"`
	Password        string               `json:"password" validate:"required,min=8"`
	Password2       string               `json:"password2" validate:"required,eqfield=Password"`
	FirstName       string               `json:"first_name" validate:"required"`
	LastName        string               `json:"last_name" validate:"required"`
	Phone           string               `json:"phone" validate:"required,numeric,len=11"`
	Address         string               `json:"address" validate:"required"`
	DateOfBirth     string               `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender          string               `json:"gender" validate:"required,oneof=M F"`
	Specialization  string               `json:"specialization" validate:"required"`
	LicenseNumber   string               `json:"license_number" validate:"required"`
	ExperienceYears int                  `json:"experience_years" validate:"gte=0"`
	ConsultationFee float64              `json:"consultation_fee" validate:"gte=0"`
	Bio             string               `json:"bio" validate:"omitempty"`
	Clinic          int                  `json:"clinic" validate:"required_without=NewClinic,gte=0"`
	NewClinic       *CreateClinicRequest `json:"new_clinic,omitempty" validate:"omitempty"`
}

// Response DTOs

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	DoctorID       string `json:"doctor_id,omitempty"`
	PatientID      string `json:"patient_id,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
	Dashboard   string       `json:"dashboard"`
}
