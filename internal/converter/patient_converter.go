package converter

import (
	"strings"

	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to PatientProfileResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile, pictureURL string) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	user := profile.User
	return &dto.PatientProfileResponse{
		ID:                   profile.ID.String(),
		UserID:               user.ID.String(),
		Username:             user.Username,
		Email:                user.Email,
		FirstName:            user.FirstName,
		LastName:             user.LastName,
		FullName:             strings.TrimSpace(user.FirstName + " " + user.LastName),
		Phone:                user.Phone,
		Address:              user.Address,
		DateOfBirth:          user.DateOfBirth,
		Gender:               user.Gender,
		ProfilePicture:       pictureURL,
		BloodType:            profile.BloodType,
		Allergies:            profile.Allergies,
		MedicalHistory:       profile.MedicalHistory,
		EmergencyContact:     profile.EmergencyContact,
		EmergencyContactName: profile.EmergencyContactName,
	}
}

// PatientProfileUpdateFromRequest trims the request into the body sent to the backend
func PatientProfileUpdateFromRequest(req *dto.UpdatePatientProfileRequest) *entity.PatientProfileUpdate {
	return &entity.PatientProfileUpdate{
		FirstName:            strings.TrimSpace(req.FirstName),
		LastName:             strings.TrimSpace(req.LastName),
		Email:                strings.TrimSpace(req.Email),
		Phone:                strings.TrimSpace(req.Phone),
		Address:              strings.TrimSpace(req.Address),
		DateOfBirth:          req.DateOfBirth,
		Gender:               req.Gender,
		EmergencyContact:     strings.TrimSpace(req.EmergencyContact),
		EmergencyContactName: strings.TrimSpace(req.EmergencyContactName),
		MedicalHistory:       strings.TrimSpace(req.MedicalHistory),
		Allergies:            strings.TrimSpace(req.Allergies),
		BloodType:            req.BloodType,
	}
}
