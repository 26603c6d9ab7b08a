package repository

import (
	"context"

	"smart-clinic-gateway/internal/domain/entity"
)

// PatientRepository reads and updates the profile of the patient owning token.
type PatientRepository interface {
	FindMe(ctx context.Context, token string) (*entity.PatientProfile, error)
	UpdateMe(ctx context.Context, token string, update *entity.PatientProfileUpdate) (*entity.PatientProfile, error)
}
