package usecase

import (
	"context"
	"testing"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/infrastructure/backend"
	"smart-clinic-gateway/internal/infrastructure/metrics"
	"smart-clinic-gateway/internal/service"
	"smart-clinic-gateway/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submitterFixture struct {
	submitter BookingSubmitter
	repo      *fakeAppointmentRepo
	audit     *fakeAuditService
	metrics   *metrics.GatewayMetrics
	schedules ScheduleSnapshot
}

// Today is Wednesday 2024-06-05; Monday 2024-06-10 has a dated slot and
// every Monday has a weekly slot.
func newSubmitterFixture(t *testing.T) *submitterFixture {
	t.Helper()
	repo := &fakeAppointmentRepo{}
	audit := &fakeAuditService{}
	m := metrics.NewGatewayMetrics(prometheus.NewRegistry())

	return &submitterFixture{
		submitter: NewBookingSubmitter(
			newTestLogger(),
			validator.NewValidator(),
			service.NewAvailabilityResolver(fixedClock(2024, 6, 5)),
			repo,
			audit,
			m,
			0,
		),
		repo:    repo,
		audit:   audit,
		metrics: m,
		schedules: ScheduleSnapshot{
			DoctorID: 7,
			Entries: []entity.ScheduleEntry{
				recurring(1, "Monday", "14:00", "15:00"),
				specific(2, date(2024, 6, 10), "09:00", "10:00"),
			},
		},
	}
}

const validReason = "Persistent headache for a week"

func TestSubmit_BooksSpecificSlot(t *testing.T) {
	f := newSubmitterFixture(t)

	appointment, err := f.submitter.Submit(context.Background(), patientSession(), f.schedules, 7, date(2024, 6, 10), validReason)
	require.NoError(t, err)
	assert.Equal(t, entity.ID("55"), appointment.ID)

	require.Len(t, f.repo.requests, 1)
	assert.Equal(t, &entity.AppointmentRequest{
		DoctorID: 7,
		Date:     "2024-06-10",
		Time:     "09:00",
		Reason:   validReason,
	}, f.repo.requests[0])
	assert.Equal(t, []string{"backend-token"}, f.repo.tokens)
	assert.Equal(t, []string{entity.AuditActionAppointmentCreate}, f.audit.actions())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metricsBooking("booked")))
}

func TestSubmit_BooksRecurringSlot(t *testing.T) {
	f := newSubmitterFixture(t)

	_, err := f.submitter.Submit(context.Background(), patientSession(), f.schedules, 7, date(2024, 6, 17), validReason)
	require.NoError(t, err)

	require.Len(t, f.repo.requests, 1)
	assert.Equal(t, "2024-06-17", f.repo.requests[0].Date)
	assert.Equal(t, "14:00", f.repo.requests[0].Time)
}

func TestSubmit_ReasonCheckedFirst(t *testing.T) {
	f := newSubmitterFixture(t)

	_, err := f.submitter.Submit(context.Background(), nil, ScheduleSnapshot{}, 7, date(2024, 6, 11), "short")
	assert.ErrorIs(t, err, ErrReasonTooShort)

	_, err = f.submitter.Submit(context.Background(), patientSession(), f.schedules, 7, date(2024, 6, 10), "   short   ")
	assert.ErrorIs(t, err, ErrReasonTooShort)

	assert.Empty(t, f.repo.requests)
}

func TestSubmit_LocalFailuresNeverCallBackend(t *testing.T) {
	f := newSubmitterFixture(t)
	noToken := patientSession()
	noToken.BackendToken = ""

	tests := []struct {
		name    string
		session *entity.Session
		doctor  int
		on      string
		want    error
	}{
		{"no session", nil, 7, "2024-06-10", ErrUnauthenticated},
		{"session without token", noToken, 7, "2024-06-10", ErrUnauthenticated},
		{"doctor caller", doctorSession(), 7, "2024-06-10", ErrWrongRole},
		{"no matching entry", patientSession(), 7, "2024-06-11", ErrNoAvailableSlot},
		{"schedules of another doctor", patientSession(), 8, "2024-06-10", ErrNoAvailableSlot},
		{"past date", patientSession(), 7, "2024-06-03", ErrNoAvailableSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			on, err := entity.ParseDate(tt.on)
			require.NoError(t, err)

			_, err = f.submitter.Submit(context.Background(), tt.session, f.schedules, tt.doctor, on, validReason)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Empty(t, f.repo.requests)
}

func TestSubmit_RemoteRejectionSurfacesFieldErrors(t *testing.T) {
	f := newSubmitterFixture(t)
	f.repo.err = &backend.RemoteRejectedError{
		StatusCode: 400,
		FieldErrors: map[string][]string{
			"appointment_time": {"Slot already taken."},
		},
	}

	_, err := f.submitter.Submit(context.Background(), patientSession(), f.schedules, 7, date(2024, 6, 10), validReason)
	rejected, ok := backend.AsRemoteRejected(err)
	require.True(t, ok)
	assert.Equal(t, []string{"Slot already taken."}, rejected.FieldErrors["appointment_time"])
	assert.Equal(t, "appointment_time: Slot already taken.", rejected.Error())
	assert.Equal(t, []string{entity.AuditActionAppointmentRejected}, f.audit.actions())
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metricsBooking("rejected")))
}

func TestSubmit_NetworkErrorIsNotRetried(t *testing.T) {
	f := newSubmitterFixture(t)
	f.repo.err = backend.ErrNetwork

	_, err := f.submitter.Submit(context.Background(), patientSession(), f.schedules, 7, date(2024, 6, 10), validReason)
	assert.ErrorIs(t, err, backend.ErrNetwork)
	assert.Len(t, f.repo.requests, 1)
	assert.Empty(t, f.audit.actions())
}

func TestSubmit_CustomReasonLength(t *testing.T) {
	f := newSubmitterFixture(t)
	strict := NewBookingSubmitter(newTestLogger(), validator.NewValidator(),
		service.NewAvailabilityResolver(fixedClock(2024, 6, 5)), f.repo, f.audit, nil, 40)

	_, err := strict.Submit(context.Background(), patientSession(), f.schedules, 7, date(2024, 6, 10), validReason)
	assert.ErrorIs(t, err, ErrReasonTooShort)
	assert.Contains(t, err.Error(), "40")
}

func (f *submitterFixture) metricsBooking(outcome string) prometheus.Collector {
	return f.metrics.BookingCounter(outcome)
}
