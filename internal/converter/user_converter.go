package converter

import (
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
)

// SessionUserToResponse converts the user of a Session to UserResponse DTO
func SessionUserToResponse(session *entity.Session) *dto.UserResponse {
	if session == nil {
		return nil
	}

	user := session.User
	return &dto.UserResponse{
		ID:             user.ID.String(),
		Username:       user.Username,
		Email:          user.Email,
		FullName:       user.FullName(),
		Role:           string(session.Role),
		ProfilePicture: user.ProfilePicture,
		DoctorID:       user.DoctorID.String(),
		PatientID:      user.PatientID.String(),
	}
}
