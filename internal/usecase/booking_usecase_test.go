package usecase

import (
	"context"
	"testing"
	"time"

	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/service"
	"smart-clinic-gateway/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	usecase      BookingUsecase
	schedules    *fakeScheduleRepo
	appointments *fakeAppointmentRepo
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	schedules := newFakeScheduleRepo()
	schedules.byDoctor[7] = []entity.ScheduleEntry{
		recurring(1, "monday", "14:00", "15:00"),
		specific(2, date(2024, 6, 10), "09:00", "10:00"),
	}
	appointments := &fakeAppointmentRepo{}

	log := newTestLogger()
	resolver := service.NewAvailabilityResolver(fixedClock(2024, 6, 5))
	registry := newScheduleStoreRegistry(log, schedules, nil, time.Hour, time.Hour)
	t.Cleanup(registry.Stop)

	submitter := NewBookingSubmitter(log, validator.NewValidator(), resolver, appointments, &fakeAuditService{}, nil, 10)

	return &bookingFixture{
		usecase:      NewBookingUsecase(log, registry, resolver, submitter),
		schedules:    schedules,
		appointments: appointments,
	}
}

func TestBookingUsecase_SelectDoctorGroupsSchedules(t *testing.T) {
	f := newBookingFixture(t)

	list, err := f.usecase.SelectDoctor(context.Background(), patientSession(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, list.DoctorID)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Recurring, 1)
	assert.Equal(t, "monday • 14:00 - 15:00", list.Recurring[0].Label)
	assert.Equal(t, "Weekly", list.Recurring[0].TypeLabel)
	require.Len(t, list.Specific, 1)
	assert.Equal(t, "2024-06-10", list.Specific[0].SpecificDate)
	assert.Equal(t, "Specific Date", list.Specific[0].TypeLabel)
}

func TestBookingUsecase_SelectDoctorValidates(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.SelectDoctor(context.Background(), nil, 7)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = f.usecase.SelectDoctor(context.Background(), patientSession(), 0)
	assert.ErrorIs(t, err, ErrInvalidDoctorID)
}

func TestBookingUsecase_ResolveSlot(t *testing.T) {
	f := newBookingFixture(t)
	session := patientSession()
	_, err := f.usecase.SelectDoctor(context.Background(), session, 7)
	require.NoError(t, err)

	slot, err := f.usecase.ResolveSlot(context.Background(), session, "2024-06-10")
	require.NoError(t, err)
	assert.True(t, slot.Available)
	require.NotNil(t, slot.Slot)
	assert.Equal(t, 2, slot.Slot.ScheduleEntryID)
	assert.Equal(t, "09:00", slot.Slot.StartTime)

	slot, err = f.usecase.ResolveSlot(context.Background(), session, "2024-06-17")
	require.NoError(t, err)
	require.NotNil(t, slot.Slot)
	assert.Equal(t, 1, slot.Slot.ScheduleEntryID)

	slot, err = f.usecase.ResolveSlot(context.Background(), session, "2024-06-11")
	require.NoError(t, err)
	assert.False(t, slot.Available)
	assert.Nil(t, slot.Slot)
}

func TestBookingUsecase_RequiresSelectedDoctor(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.ResolveSlot(context.Background(), patientSession(), "2024-06-10")
	assert.ErrorIs(t, err, ErrNoScheduleLoaded)

	_, err = f.usecase.IsDateBookable(context.Background(), patientSession(), "2024-06-10")
	assert.ErrorIs(t, err, ErrNoScheduleLoaded)
}

func TestBookingUsecase_RejectsBadDates(t *testing.T) {
	f := newBookingFixture(t)
	session := patientSession()
	_, err := f.usecase.SelectDoctor(context.Background(), session, 7)
	require.NoError(t, err)

	for _, raw := range []string{"", "10/06/2024", "2024-13-01"} {
		_, err := f.usecase.ResolveSlot(context.Background(), session, raw)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, raw)
	}
}

func TestBookingUsecase_IsDateBookable(t *testing.T) {
	f := newBookingFixture(t)
	session := patientSession()
	_, err := f.usecase.SelectDoctor(context.Background(), session, 7)
	require.NoError(t, err)

	tests := []struct {
		on   string
		want bool
	}{
		{"2024-06-10", true},
		{"2024-06-17", true},
		{"2024-06-11", false},
		{"2024-06-03", false},
	}
	for _, tt := range tests {
		got, err := f.usecase.IsDateBookable(context.Background(), session, tt.on)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.Bookable, tt.on)
		assert.Equal(t, 7, got.DoctorID)
	}
}

func TestBookingUsecase_BookableDates(t *testing.T) {
	f := newBookingFixture(t)
	session := patientSession()
	_, err := f.usecase.SelectDoctor(context.Background(), session, 7)
	require.NoError(t, err)

	got, err := f.usecase.BookableDates(context.Background(), session, "", 14)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-05", got.From)
	assert.Equal(t, []string{"2024-06-10", "2024-06-17"}, got.Dates)

	got, err = f.usecase.BookableDates(context.Background(), session, "2024-06-11", 0)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Days)
	assert.Equal(t, []string{"2024-06-17", "2024-06-24", "2024-07-01", "2024-07-08"}, got.Dates)
}

func TestBookingUsecase_SubmitUsesDisplayedDoctor(t *testing.T) {
	f := newBookingFixture(t)
	session := patientSession()
	_, err := f.usecase.SelectDoctor(context.Background(), session, 7)
	require.NoError(t, err)

	resp, err := f.usecase.SubmitBooking(context.Background(), session, &dto.SubmitBookingRequest{
		Date:   "2024-06-10",
		Reason: validReason,
	})
	require.NoError(t, err)
	assert.Equal(t, "55", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "7", resp.DoctorID)

	require.Len(t, f.appointments.requests, 1)
	assert.Equal(t, 7, f.appointments.requests[0].DoctorID)
	assert.Equal(t, "09:00", f.appointments.requests[0].Time)
}

func TestBookingUsecase_SubmitWithoutSelection(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.usecase.SubmitBooking(context.Background(), patientSession(), &dto.SubmitBookingRequest{
		Date:   "2024-06-10",
		Reason: validReason,
	})
	assert.ErrorIs(t, err, ErrNoAvailableSlot)
	assert.Empty(t, f.appointments.requests)
}

func TestBookingUsecase_SubmitAfterFailedLoad(t *testing.T) {
	f := newBookingFixture(t)
	session := patientSession()
	_, err := f.usecase.SelectDoctor(context.Background(), session, 7)
	require.NoError(t, err)

	f.schedules.errs[8] = assert.AnError
	_, err = f.usecase.SelectDoctor(context.Background(), session, 8)
	require.ErrorIs(t, err, ErrScheduleUnavailable)

	_, err = f.usecase.SubmitBooking(context.Background(), session, &dto.SubmitBookingRequest{
		Date:   "2024-06-10",
		Reason: validReason,
	})
	assert.ErrorIs(t, err, ErrNoAvailableSlot)
	assert.Empty(t, f.appointments.requests)
}
