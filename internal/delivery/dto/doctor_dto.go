package dto

type ClinicResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Description string `json:"description,omitempty"`
}

type CreateClinicRequest struct {
	Name        string `json:"name" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description" validate:"omitempty"`
}

type ClinicListResponse struct {
	Clinics []ClinicResponse `json:"clinics"`
	Total   int              `json:"total"`
}

type DoctorResponse struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
	ProfilePicture  string          `json:"profile_picture,omitempty"`
	Clinic          *ClinicResponse `json:"clinic,omitempty"`
}
