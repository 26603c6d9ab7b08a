package repository

import (
	"context"

	"smart-clinic-gateway/internal/domain/entity"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, doctorID int) (*entity.Doctor, error)
}

type ClinicRepository interface {
	FindAll(ctx context.Context) ([]entity.Clinic, error)
	Create(ctx context.Context, clinic *entity.Clinic) (*entity.Clinic, error)
}
