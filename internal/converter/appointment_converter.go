package converter

import (
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	doctorName := appointment.DoctorName
	if doctorName == "" {
		doctorName = appointment.Doctor.FullName()
	}
	patientName := appointment.PatientName
	if patientName == "" {
		patientName = appointment.Patient.FullName()
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID.String(),
		DoctorID:       appointment.Doctor.ID.String(),
		DoctorName:     doctorName,
		Specialization: appointment.Doctor.Specialization,
		PatientID:      appointment.Patient.ID.String(),
		PatientName:    patientName,
		PatientEmail:   appointment.Patient.Email,
		PatientPhone:   appointment.Patient.Phone,
		Date:           appointment.Date,
		Time:           appointment.Time,
		Reason:         appointment.Reason,
		Status:         string(appointment.Status),
		Notes:          appointment.Notes,
		CreatedAt:      appointment.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
