package repository

import (
	"context"

	"smart-clinic-gateway/internal/domain/entity"
)

// AppointmentRepository is the booking API of the clinic backend.
type AppointmentRepository interface {
	Create(ctx context.Context, token string, req *entity.AppointmentRequest) (*entity.Appointment, error)
	FindAll(ctx context.Context, token string) ([]entity.Appointment, error)
	UpdateStatus(ctx context.Context, token string, id string, status entity.AppointmentStatus) (*entity.Appointment, error)
	Cancel(ctx context.Context, token string, id string) (*entity.Appointment, error)
}
