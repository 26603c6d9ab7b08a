package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"smart-clinic-gateway/internal/converter"
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/service"

	"github.com/sirupsen/logrus"
)

const maxBookableDays = 62

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDoctorID   = errors.New("invalid doctor id")
)

// BookingUsecase is what the booking page calls: it picks the displayed doctor
// of a session and answers slot questions against that doctor's schedules.
type BookingUsecase interface {
	SelectDoctor(ctx context.Context, session *entity.Session, doctorID int) (*dto.ScheduleListResponse, error)
	ResolveSlot(ctx context.Context, session *entity.Session, rawDate string) (*dto.SlotResponse, error)
	IsDateBookable(ctx context.Context, session *entity.Session, rawDate string) (*dto.BookableResponse, error)
	BookableDates(ctx context.Context, session *entity.Session, rawFrom string, days int) (*dto.BookableDatesResponse, error)
	SubmitBooking(ctx context.Context, session *entity.Session, req *dto.SubmitBookingRequest) (*dto.AppointmentResponse, error)
}

type bookingUsecase struct {
	log       *logrus.Logger
	stores    *ScheduleStoreRegistry
	resolver  *service.AvailabilityResolver
	submitter BookingSubmitter
}

func NewBookingUsecase(
	log *logrus.Logger,
	stores *ScheduleStoreRegistry,
	resolver *service.AvailabilityResolver,
	submitter BookingSubmitter,
) BookingUsecase {
	return &bookingUsecase{
		log:       log,
		stores:    stores,
		resolver:  resolver,
		submitter: submitter,
	}
}

func (u *bookingUsecase) SelectDoctor(ctx context.Context, session *entity.Session, doctorID int) (*dto.ScheduleListResponse, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}
	if doctorID <= 0 {
		return nil, ErrInvalidDoctorID
	}

	entries, err := u.stores.ForSession(session.ID).Load(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return converter.ScheduleListToResponse(doctorID, entries), nil
}

func (u *bookingUsecase) ResolveSlot(ctx context.Context, session *entity.Session, rawDate string) (*dto.SlotResponse, error) {
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, err
	}
	snapshot, err := u.snapshot(session)
	if err != nil {
		return nil, err
	}

	slot, _ := u.resolver.ResolveSlot(snapshot, date)
	return converter.SlotToResponse(snapshot.DoctorID, date.Format(entity.DateLayout), slot), nil
}

func (u *bookingUsecase) IsDateBookable(ctx context.Context, session *entity.Session, rawDate string) (*dto.BookableResponse, error) {
	date, err := parseDate(rawDate)
	if err != nil {
		return nil, err
	}
	snapshot, err := u.snapshot(session)
	if err != nil {
		return nil, err
	}

	return &dto.BookableResponse{
		Date:     date.Format(entity.DateLayout),
		DoctorID: snapshot.DoctorID,
		Bookable: u.resolver.IsDateBookable(snapshot, date),
	}, nil
}

// BookableDates lists bookable days starting at rawFrom, or today when empty.
func (u *bookingUsecase) BookableDates(ctx context.Context, session *entity.Session, rawFrom string, days int) (*dto.BookableDatesResponse, error) {
	from := u.resolver.Today()
	if rawFrom != "" {
		parsed, err := parseDate(rawFrom)
		if err != nil {
			return nil, err
		}
		from = parsed
	}
	if days <= 0 || days > maxBookableDays {
		days = 30
	}

	snapshot, err := u.snapshot(session)
	if err != nil {
		return nil, err
	}

	dates := u.resolver.BookableDates(snapshot, from, days)
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(entity.DateLayout)
	}

	return &dto.BookableDatesResponse{
		DoctorID: snapshot.DoctorID,
		From:     from.Format(entity.DateLayout),
		Days:     days,
		Dates:    formatted,
	}, nil
}

// SubmitBooking books the displayed doctor of the session on req.Date.
func (u *bookingUsecase) SubmitBooking(ctx context.Context, session *entity.Session, req *dto.SubmitBookingRequest) (*dto.AppointmentResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	var snapshot ScheduleSnapshot
	if session != nil {
		snapshot = u.stores.ForSession(session.ID).Snapshot()
	}

	appointment, err := u.submitter.Submit(ctx, session, snapshot, snapshot.DoctorID, date, req.Reason)
	if err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

// snapshot returns the schedules of the doctor on display for session.
// A store whose last load failed answers with no entries.
func (u *bookingUsecase) snapshot(session *entity.Session) (ScheduleSnapshot, error) {
	if session == nil {
		return ScheduleSnapshot{}, ErrUnauthenticated
	}
	snapshot := u.stores.ForSession(session.ID).Snapshot()
	if errors.Is(snapshot.Err, ErrNoScheduleLoaded) {
		return snapshot, ErrNoScheduleLoaded
	}
	if snapshot.Err != nil {
		u.log.Debugf("Resolving against unavailable schedules of doctor %d: %v", snapshot.DoctorID, snapshot.Err)
	}
	return snapshot, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrInvalidDateFormat
	}
	date, err := entity.ParseDate(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, raw)
	}
	return date, nil
}
