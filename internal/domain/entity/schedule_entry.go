package entity

import (
	"fmt"
	"strings"
	"time"
)

// ScheduleKind tells whether an entry repeats weekly or applies to one date.
type ScheduleKind string

const (
	ScheduleKindRecurring ScheduleKind = "recurring"
	ScheduleKindSpecific  ScheduleKind = "specific"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// ScheduleEntry is one availability window of a doctor.
// Exactly one of DayOfWeek and SpecificDate is set, according to Kind.
type ScheduleEntry struct {
	ID           int          `json:"id"`
	DoctorID     int          `json:"doctor"`
	Kind         ScheduleKind `json:"schedule_type"`
	DayOfWeek    string       `json:"day,omitempty"`
	SpecificDate *time.Time   `json:"-"`
	StartTime    string       `json:"start_time"`
	EndTime      string       `json:"end_time"`
	IsAvailable  bool         `json:"is_available"`
	Notes        string       `json:"notes,omitempty"`
}

func (e *ScheduleEntry) IsRecurring() bool {
	return e.Kind == ScheduleKindRecurring
}

func (e *ScheduleEntry) IsSpecific() bool {
	return e.Kind == ScheduleKindSpecific
}

// Validate checks the kind/day/date invariant.
func (e *ScheduleEntry) Validate() error {
	switch e.Kind {
	case ScheduleKindRecurring:
		if e.DayOfWeek == "" {
			return fmt.Errorf("schedule %d: recurring entry without day", e.ID)
		}
		if e.SpecificDate != nil {
			return fmt.Errorf("schedule %d: recurring entry with specific date", e.ID)
		}
	case ScheduleKindSpecific:
		if e.SpecificDate == nil {
			return fmt.Errorf("schedule %d: specific entry without date", e.ID)
		}
		if e.DayOfWeek != "" {
			return fmt.Errorf("schedule %d: specific entry with day", e.ID)
		}
	default:
		return fmt.Errorf("schedule %d: unknown schedule type %q", e.ID, e.Kind)
	}
	return nil
}

// DisplayLabel renders the entry the way the booking page lists it.
func (e *ScheduleEntry) DisplayLabel() string {
	if e.IsRecurring() {
		return fmt.Sprintf("%s • %s - %s", e.DayOfWeek, e.StartTime, e.EndTime)
	}
	date := ""
	if e.SpecificDate != nil {
		date = e.SpecificDate.Format(DateLayout)
	}
	return fmt.Sprintf("%s • %s - %s", date, e.StartTime, e.EndTime)
}

func (e *ScheduleEntry) TypeLabel() string {
	if e.IsRecurring() {
		return "Weekly"
	}
	return "Specific Date"
}

// ResolvedSlot is the schedule entry selected for a candidate date.
type ResolvedSlot struct {
	ScheduleEntryID int    `json:"schedule_entry_id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

// DateOnly strips the time of day, keeping the local calendar date.
func DateOnly(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.Local)
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the local calendar date.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if d, err := time.ParseInLocation(DateLayout, raw, time.Local); err == nil {
		return d, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", raw)
	}
	return DateOnly(ts), nil
}
