package converter

import (
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
)

// ScheduleToResponse converts a ScheduleEntry entity to ScheduleResponse DTO
func ScheduleToResponse(entry *entity.ScheduleEntry) *dto.ScheduleResponse {
	if entry == nil {
		return nil
	}

	response := &dto.ScheduleResponse{
		ID:           entry.ID,
		DoctorID:     entry.DoctorID,
		ScheduleType: string(entry.Kind),
		Day:          entry.DayOfWeek,
		StartTime:    entry.StartTime,
		EndTime:      entry.EndTime,
		IsAvailable:  entry.IsAvailable,
		Notes:        entry.Notes,
		Label:        entry.DisplayLabel(),
		TypeLabel:    entry.TypeLabel(),
	}
	if entry.SpecificDate != nil {
		response.SpecificDate = entry.SpecificDate.Format(entity.DateLayout)
	}

	return response
}

// SchedulesToResponses converts a slice of ScheduleEntry entities to slice of ScheduleResponse DTOs
func SchedulesToResponses(entries []entity.ScheduleEntry) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(entries))
	for i := range entries {
		responses[i] = *ScheduleToResponse(&entries[i])
	}
	return responses
}

// ScheduleListToResponse splits the entries of one doctor into weekly and dated lists.
func ScheduleListToResponse(doctorID int, entries []entity.ScheduleEntry) *dto.ScheduleListResponse {
	response := &dto.ScheduleListResponse{
		DoctorID:  doctorID,
		Recurring: []dto.ScheduleResponse{},
		Specific:  []dto.ScheduleResponse{},
		Total:     len(entries),
	}
	for i := range entries {
		item := *ScheduleToResponse(&entries[i])
		if entries[i].IsRecurring() {
			response.Recurring = append(response.Recurring, item)
		} else {
			response.Specific = append(response.Specific, item)
		}
	}
	return response
}

// SlotToResponse converts a resolution result to SlotResponse DTO
func SlotToResponse(doctorID int, date string, slot *entity.ResolvedSlot) *dto.SlotResponse {
	response := &dto.SlotResponse{
		Date:      date,
		DoctorID:  doctorID,
		Available: slot != nil,
	}
	if slot != nil {
		response.Slot = &dto.ResolvedSlot{
			ScheduleEntryID: slot.ScheduleEntryID,
			StartTime:       slot.StartTime,
			EndTime:         slot.EndTime,
		}
	}
	return response
}
