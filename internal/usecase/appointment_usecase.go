package usecase

import (
	"context"
	"errors"

	"smart-clinic-gateway/internal/converter"
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/infrastructure/backend"
	"smart-clinic-gateway/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrInvalidStatus               = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	GetMyAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, session *entity.Session, appointmentID string) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, session *entity.Session, appointmentID string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

// GetMyAppointments lists what the backend shows the caller: a patient sees
// their own bookings, a doctor the bookings made with them.
func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, session *entity.Session) (*dto.AppointmentListResponse, error) {
	if !session.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}

	appointments, err := u.appointmentRepo.FindAll(ctx, session.BackendToken)
	if err != nil {
		u.log.Warnf("Failed to find appointments for user %s: %+v", session.User.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, session *entity.Session, appointmentID string) (*dto.AppointmentResponse, error) {
	if !session.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !session.HasRole(entity.RolePatient) {
		return nil, ErrWrongRole
	}

	appointment, err := u.appointmentRepo.Cancel(ctx, session.BackendToken, appointmentID)
	if err != nil {
		return nil, u.mapError("cancel", appointmentID, err)
	}

	u.auditService.Record(ctx, session, entity.AuditActionAppointmentCancel, "appointment", appointmentID, nil)

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus lets a doctor confirm, complete or cancel an appointment.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, session *entity.Session, appointmentID string, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	if !session.IsAuthenticated() {
		return nil, ErrUnauthenticated
	}
	if !session.HasRole(entity.RoleDoctor) {
		return nil, ErrWrongRole
	}

	status := entity.AppointmentStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.appointmentRepo.UpdateStatus(ctx, session.BackendToken, appointmentID, status)
	if err != nil {
		return nil, u.mapError("update status of", appointmentID, err)
	}

	u.auditService.Record(ctx, session, entity.AuditActionAppointmentStatus, "appointment", appointmentID, map[string]string{
		"status": req.Status,
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) mapError(op, appointmentID string, err error) error {
	if errors.Is(err, backend.ErrNotFound) {
		return ErrAppointmentNotFound
	}
	u.log.Warnf("Failed to %s appointment %s: %+v", op, appointmentID, err)
	return err
}
