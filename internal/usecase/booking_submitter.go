package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/infrastructure/backend"
	"smart-clinic-gateway/internal/infrastructure/metrics"
	"smart-clinic-gateway/internal/service"
	"smart-clinic-gateway/pkg/validator"

	"github.com/sirupsen/logrus"
)

const DefaultMinReasonLength = 10

var (
	ErrReasonTooShort  = errors.New("reason is too short")
	ErrUnauthenticated = errors.New("not authenticated")
	ErrWrongRole       = errors.New("only patients can book appointments")
	ErrNoAvailableSlot = errors.New("no available schedule for the selected date")
)

// BookingSubmitter turns a candidate date into an appointment on the clinic backend.
type BookingSubmitter interface {
	Submit(ctx context.Context, session *entity.Session, schedules ScheduleSnapshot, doctorID int, date time.Time, reason string) (*entity.Appointment, error)
}

type bookingSubmitter struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	resolver        *service.AvailabilityResolver
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	metrics         *metrics.GatewayMetrics
	minReasonLength int
}

func NewBookingSubmitter(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	resolver *service.AvailabilityResolver,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	m *metrics.GatewayMetrics,
	minReasonLength int,
) BookingSubmitter {
	if minReasonLength <= 0 {
		minReasonLength = DefaultMinReasonLength
	}
	return &bookingSubmitter{
		log:             log,
		validator:       validator,
		resolver:        resolver,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		metrics:         m,
		minReasonLength: minReasonLength,
	}
}

// Submit books the slot that applies to date for doctorID.
//
// Every local check runs before the backend is called: reason length, session,
// patient role, then slot resolution against schedules. schedules only counts
// when it was loaded for doctorID.
func (s *bookingSubmitter) Submit(
	ctx context.Context,
	session *entity.Session,
	schedules ScheduleSnapshot,
	doctorID int,
	date time.Time,
	reason string,
) (*entity.Appointment, error) {
	reason = strings.TrimSpace(reason)
	if err := s.validator.ValidateVar(reason, fmt.Sprintf("required,min=%d", s.minReasonLength)); err != nil {
		s.metrics.ObserveBooking("invalid_reason")
		return nil, fmt.Errorf("%w: at least %d characters required", ErrReasonTooShort, s.minReasonLength)
	}

	if !session.IsAuthenticated() {
		s.metrics.ObserveBooking("unauthenticated")
		return nil, ErrUnauthenticated
	}
	if !session.HasRole(entity.RolePatient) {
		s.metrics.ObserveBooking("wrong_role")
		return nil, ErrWrongRole
	}

	if schedules.DoctorID != doctorID {
		schedules = ScheduleSnapshot{DoctorID: doctorID}
	}
	slot, ok := s.resolveBookable(schedules, date)
	if !ok {
		s.metrics.ObserveBooking("no_slot")
		return nil, ErrNoAvailableSlot
	}

	req := &entity.AppointmentRequest{
		DoctorID: doctorID,
		Date:     entity.DateOnly(date).Format(entity.DateLayout),
		Time:     slot.StartTime,
		Reason:   reason,
	}

	appointment, err := s.appointmentRepo.Create(ctx, session.BackendToken, req)
	if err != nil {
		var rejected *backend.RemoteRejectedError
		switch {
		case errors.As(err, &rejected):
			s.metrics.ObserveBooking("rejected")
			s.auditService.Record(ctx, session, entity.AuditActionAppointmentRejected, "appointment", "", rejected.FieldErrors)
		case errors.Is(err, backend.ErrNetwork):
			s.metrics.ObserveBooking("network_error")
		default:
			s.metrics.ObserveBooking("failed")
		}
		s.log.Warnf("Failed to submit appointment for doctor %d on %s: %+v", doctorID, req.Date, err)
		return nil, err
	}

	s.metrics.ObserveBooking("booked")
	s.auditService.Record(ctx, session, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), req)
	s.log.Infof("Appointment %s booked for doctor %d on %s at %s", appointment.ID, doctorID, req.Date, req.Time)

	return appointment, nil
}

// resolveBookable treats past dates like dates without a schedule.
func (s *bookingSubmitter) resolveBookable(schedules ScheduleSnapshot, date time.Time) (*entity.ResolvedSlot, bool) {
	if s.resolver.IsPast(date) {
		return nil, false
	}
	return s.resolver.ResolveSlot(schedules, date)
}
