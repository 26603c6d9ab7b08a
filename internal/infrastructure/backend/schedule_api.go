package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
)

type scheduleAPI struct {
	client *Client
}

func NewScheduleRepository(client *Client) repository.ScheduleRepository {
	return &scheduleAPI{client: client}
}

// scheduleWire is the raw schedule shape of the backend.
type scheduleWire struct {
	ID           int     `json:"id,omitempty"`
	Doctor       int     `json:"doctor,omitempty"`
	ScheduleType string  `json:"schedule_type"`
	Day          *string `json:"day,omitempty"`
	SpecificDate *string `json:"specific_date,omitempty"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	IsAvailable  bool    `json:"is_available"`
	Notes        string  `json:"notes,omitempty"`
}

func (r *scheduleAPI) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.ScheduleEntry, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/doctors/%d/schedules/", doctorID)
	if err := r.client.do(ctx, "schedules.list", http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, err
	}

	var wires []scheduleWire
	if err := decodeList(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode schedules for doctor %d: %w", doctorID, err)
	}

	entries := make([]entity.ScheduleEntry, 0, len(wires))
	for _, w := range wires {
		entry, err := w.toEntity()
		if err != nil {
			r.client.log.Warnf("Skipping malformed schedule for doctor %d: %+v", doctorID, err)
			continue
		}
		if entry.DoctorID == 0 {
			entry.DoctorID = doctorID
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func (r *scheduleAPI) Create(ctx context.Context, token string, entry *entity.ScheduleEntry) (*entity.ScheduleEntry, error) {
	var created scheduleWire
	if err := r.client.do(ctx, "schedules.create", http.MethodPost, "/doctors/schedule/create/", token, fromEntity(entry), &created); err != nil {
		return nil, err
	}
	result, err := created.toEntity()
	if err != nil {
		return nil, fmt.Errorf("decode created schedule: %w", err)
	}
	return result, nil
}

func (w scheduleWire) toEntity() (*entity.ScheduleEntry, error) {
	entry := &entity.ScheduleEntry{
		ID:          w.ID,
		DoctorID:    w.Doctor,
		Kind:        entity.ScheduleKind(strings.ToLower(strings.TrimSpace(w.ScheduleType))),
		StartTime:   w.StartTime,
		EndTime:     w.EndTime,
		IsAvailable: w.IsAvailable,
		Notes:       w.Notes,
	}

	switch entry.Kind {
	case entity.ScheduleKindRecurring:
		if w.Day != nil {
			entry.DayOfWeek = strings.TrimSpace(*w.Day)
		}
	case entity.ScheduleKindSpecific:
		if w.SpecificDate != nil && *w.SpecificDate != "" {
			date, err := entity.ParseDate(*w.SpecificDate)
			if err != nil {
				return nil, fmt.Errorf("schedule %d: %w", w.ID, err)
			}
			entry.SpecificDate = &date
		}
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

func fromEntity(entry *entity.ScheduleEntry) scheduleWire {
	w := scheduleWire{
		ID:           entry.ID,
		Doctor:       entry.DoctorID,
		ScheduleType: string(entry.Kind),
		StartTime:    entry.StartTime,
		EndTime:      entry.EndTime,
		IsAvailable:  entry.IsAvailable,
		Notes:        entry.Notes,
	}
	if entry.DayOfWeek != "" {
		day := entry.DayOfWeek
		w.Day = &day
	}
	if entry.SpecificDate != nil {
		date := entry.SpecificDate.Format(entity.DateLayout)
		w.SpecificDate = &date
	}
	return w
}
