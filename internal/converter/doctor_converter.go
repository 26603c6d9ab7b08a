package converter

import (
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO.
// pictureURL is the already resolved absolute URL of the profile picture.
func DoctorToResponse(doctor *entity.Doctor, pictureURL string) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:              doctor.ID,
		Name:            doctor.DisplayName(),
		Username:        doctor.User.Username,
		Email:           doctor.User.Email,
		Phone:           doctor.User.Phone,
		Bio:             doctor.Bio,
		Specialization:  doctor.Specialization,
		ExperienceYears: doctor.ExperienceYears,
		ProfilePicture:  pictureURL,
		Clinic:          ClinicToResponse(doctor.Clinic),
	}
}

// ClinicToResponse converts a Clinic entity to ClinicResponse DTO
func ClinicToResponse(clinic *entity.Clinic) *dto.ClinicResponse {
	if clinic == nil {
		return nil
	}

	return &dto.ClinicResponse{
		ID:          clinic.ID,
		Name:        clinic.Name,
		Address:     clinic.Address,
		Phone:       clinic.Phone,
		Email:       clinic.Email,
		Description: clinic.Description,
	}
}

// ClinicsToResponses converts a slice of Clinic entities to slice of ClinicResponse DTOs
func ClinicsToResponses(clinics []entity.Clinic) []dto.ClinicResponse {
	responses := make([]dto.ClinicResponse, len(clinics))
	for i := range clinics {
		responses[i] = *ClinicToResponse(&clinics[i])
	}
	return responses
}
