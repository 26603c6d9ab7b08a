package backend

import (
	"context"
	"net/http"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
)

const patientMePath = "/patients/me/"

type patientAPI struct {
	client *Client
}

func NewPatientRepository(client *Client) repository.PatientRepository {
	return &patientAPI{client: client}
}

func (r *patientAPI) FindMe(ctx context.Context, token string) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	if err := r.client.do(ctx, "patients.me", http.MethodGet, patientMePath, token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *patientAPI) UpdateMe(ctx context.Context, token string, update *entity.PatientProfileUpdate) (*entity.PatientProfile, error) {
	var profile entity.PatientProfile
	if err := r.client.do(ctx, "patients.me.update", http.MethodPut, patientMePath, token, update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
