package dto

// Request DTOs

type SelectDoctorRequest struct {
	DoctorID int `json:"doctor_id" validate:"required,min=1"`
}

type CreateScheduleRequest struct {
	ScheduleType string `json:"schedule_type" validate:"required,oneof=recurring specific"`
	Day          string `json:"day" validate:"required_if=ScheduleType recurring,excluded_if=ScheduleType specific"`
	SpecificDate string `json:"specific_date" validate:"required_if=ScheduleType specific,excluded_if=ScheduleType recurring"`
	StartTime    string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string `json:"end_time" validate:"required,datetime=15:04"`
	IsAvailable  *bool  `json:"is_available"`
	Notes        string `json:"notes" validate:"omitempty,max=500"`
}

// Response DTOs

type ScheduleResponse struct {
	ID           int    `json:"id"`
	DoctorID     int    `json:"doctor_id"`
	ScheduleType string `json:"schedule_type"`
	Day          string `json:"day,omitempty"`
	SpecificDate string `json:"specific_date,omitempty"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsAvailable  bool   `json:"is_available"`
	Notes        string `json:"notes,omitempty"`
	Label        string `json:"label"`
	TypeLabel    string `json:"type_label"`
}

type ScheduleListResponse struct {
	DoctorID  int                `json:"doctor_id"`
	Recurring []ScheduleResponse `json:"recurring"`
	Specific  []ScheduleResponse `json:"specific"`
	Total     int                `json:"total"`
}

type SlotResponse struct {
	Date      string        `json:"date"`
	DoctorID  int           `json:"doctor_id"`
	Available bool          `json:"available"`
	Slot      *ResolvedSlot `json:"slot,omitempty"`
}

type ResolvedSlot struct {
	ScheduleEntryID int    `json:"schedule_entry_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

type BookableResponse struct {
	Date     string `json:"date"`
	DoctorID int    `json:"doctor_id"`
	Bookable bool   `json:"bookable"`
}

type BookableDatesResponse struct {
	DoctorID int      `json:"doctor_id"`
	From     string   `json:"from"`
	Days     int      `json:"days"`
	Dates    []string `json:"dates"`
}
