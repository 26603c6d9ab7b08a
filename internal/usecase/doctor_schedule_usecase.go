package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"smart-clinic-gateway/internal/converter"
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidScheduleDate = errors.New("invalid schedule date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrInvalidScheduleKind = errors.New("recurring schedules need a day, specific schedules need a date")
	ErrInvalidDayOfWeek    = errors.New("day must be an English weekday name")
)

const timeLayout = "15:04"

type DoctorScheduleUsecase interface {
	CreateSchedule(ctx context.Context, session *entity.Session, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetSchedulesByDoctor(ctx context.Context, doctorID int) (*dto.ScheduleListResponse, error)
}

type doctorScheduleUsecase struct {
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	auditService service.AuditService
}

func NewDoctorScheduleUsecase(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	auditService service.AuditService,
) DoctorScheduleUsecase {
	return &doctorScheduleUsecase{
		log:          log,
		scheduleRepo: scheduleRepo,
		auditService: auditService,
	}
}

// CreateSchedule publishes a new availability window for the logged-in doctor.
func (u *doctorScheduleUsecase) CreateSchedule(ctx context.Context, session *entity.Session, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if !session.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !session.HasRole(entity.RoleDoctor) {
		return nil, ErrWrongRole
	}

	entry, err := scheduleFromRequest(req)
	if err != nil {
		return nil, err
	}
	if id, err := strconv.Atoi(session.User.DoctorID.String()); err == nil {
		entry.DoctorID = id
	}

	created, err := u.scheduleRepo.Create(ctx, session.BackendToken, entry)
	if err != nil {
		u.log.Warnf("Failed to create schedule: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, session, entity.AuditActionScheduleCreate, "schedule", strconv.Itoa(created.ID), converter.ScheduleToResponse(created))

	return converter.ScheduleToResponse(created), nil
}

func (u *doctorScheduleUsecase) GetSchedulesByDoctor(ctx context.Context, doctorID int) (*dto.ScheduleListResponse, error) {
	if doctorID <= 0 {
		return nil, ErrInvalidDoctorID
	}

	entries, err := u.scheduleRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find schedules of doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return converter.ScheduleListToResponse(doctorID, entries), nil
}

func scheduleFromRequest(req *dto.CreateScheduleRequest) (*entity.ScheduleEntry, error) {
	start, err := time.Parse(timeLayout, req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	end, err := time.Parse(timeLayout, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	entry := &entity.ScheduleEntry{
		Kind:        entity.ScheduleKind(strings.ToLower(req.ScheduleType)),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
		Notes:       req.Notes,
	}
	if req.IsAvailable != nil {
		entry.IsAvailable = *req.IsAvailable
	}

	switch entry.Kind {
	case entity.ScheduleKindRecurring:
		if req.Day != "" {
			day, ok := weekdayName(req.Day)
			if !ok {
				return nil, ErrInvalidDayOfWeek
			}
			entry.DayOfWeek = day
		}
	case entity.ScheduleKindSpecific:
		date, err := time.ParseInLocation(entity.DateLayout, req.SpecificDate, time.Local)
		if err != nil {
			return nil, ErrInvalidScheduleDate
		}
		entry.SpecificDate = &date
	}

	if err := entry.Validate(); err != nil {
		return nil, ErrInvalidScheduleKind
	}
	return entry, nil
}

// weekdayName normalises "monday" or "MONDAY" to "Monday".
func weekdayName(raw string) (string, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(strings.TrimSpace(raw), d.String()) {
			return d.String(), true
		}
	}
	return "", false
}
