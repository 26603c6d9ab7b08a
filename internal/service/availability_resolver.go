package service

import (
	"strings"
	"time"

	"smart-clinic-gateway/internal/domain/entity"
)

// ScheduleSource provides the available schedule entries of one doctor.
type ScheduleSource interface {
	SpecificSubset() []entity.ScheduleEntry
	RecurringSubset() []entity.ScheduleEntry
}

// AvailabilityResolver decides which schedule entry applies to a calendar date.
// It holds no state besides the clock used for "today".
type AvailabilityResolver struct {
	clock func() time.Time
}

func NewAvailabilityResolver(clock func() time.Time) *AvailabilityResolver {
	if clock == nil {
		clock = time.Now
	}
	return &AvailabilityResolver{clock: clock}
}

// MatchEntry returns the entry applicable to date.
//
// A specific-date entry for that date always wins over recurring entries; among
// several candidates of the same kind the first one in source order is used.
func (r *AvailabilityResolver) MatchEntry(src ScheduleSource, date time.Time) (*entity.ScheduleEntry, bool) {
	if src == nil {
		return nil, false
	}
	day := entity.DateOnly(date)

	for _, entry := range src.SpecificSubset() {
		if !entry.IsSpecific() || !entry.IsAvailable || entry.SpecificDate == nil {
			continue
		}
		if entity.DateOnly(*entry.SpecificDate).Equal(day) {
			match := entry
			return &match, true
		}
	}

	weekday := day.Weekday().String()
	for _, entry := range src.RecurringSubset() {
		if !entry.IsRecurring() || !entry.IsAvailable {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(entry.DayOfWeek), weekday) {
			match := entry
			return &match, true
		}
	}

	return nil, false
}

// ResolveSlot returns the slot bookable on date, or false when none applies.
func (r *AvailabilityResolver) ResolveSlot(src ScheduleSource, date time.Time) (*entity.ResolvedSlot, bool) {
	entry, ok := r.MatchEntry(src, date)
	if !ok {
		return nil, false
	}
	return &entity.ResolvedSlot{
		ScheduleEntryID: entry.ID,
		StartTime:       entry.StartTime,
		EndTime:         entry.EndTime,
	}, true
}

// IsDateBookable is false for any date before today, whatever the schedule says.
func (r *AvailabilityResolver) IsDateBookable(src ScheduleSource, date time.Time) bool {
	if r.IsPast(date) {
		return false
	}
	_, ok := r.MatchEntry(src, date)
	return ok
}

// IsPast reports whether date lies strictly before today.
func (r *AvailabilityResolver) IsPast(date time.Time) bool {
	return entity.DateOnly(date).Before(r.Today())
}

func (r *AvailabilityResolver) Today() time.Time {
	return entity.DateOnly(r.clock())
}

// BookableDates lists the bookable dates in [from, from+days).
func (r *AvailabilityResolver) BookableDates(src ScheduleSource, from time.Time, days int) []time.Time {
	start := entity.DateOnly(from)
	var dates []time.Time
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		if r.IsDateBookable(src, day) {
			dates = append(dates, day)
		}
	}
	return dates
}
