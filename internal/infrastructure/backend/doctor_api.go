package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
)

type doctorAPI struct {
	client *Client
}

func NewDoctorRepository(client *Client) repository.DoctorRepository {
	return &doctorAPI{client: client}
}

func (r *doctorAPI) FindByID(ctx context.Context, doctorID int) (*entity.Doctor, error) {
	var doctor entity.Doctor
	path := fmt.Sprintf("/doctors/%d/", doctorID)
	if err := r.client.do(ctx, "doctors.get", http.MethodGet, path, "", nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

type clinicAPI struct {
	client *Client
}

func NewClinicRepository(client *Client) repository.ClinicRepository {
	return &clinicAPI{client: client}
}

func (r *clinicAPI) FindAll(ctx context.Context) ([]entity.Clinic, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, "clinics.list", http.MethodGet, "/clinics/", "", nil, &raw); err != nil {
		return nil, err
	}

	var clinics []entity.Clinic
	if err := decodeList(raw, &clinics); err != nil {
		return nil, fmt.Errorf("decode clinics: %w", err)
	}
	return clinics, nil
}

func (r *clinicAPI) Create(ctx context.Context, clinic *entity.Clinic) (*entity.Clinic, error) {
	var created entity.Clinic
	if err := r.client.do(ctx, "clinics.create", http.MethodPost, "/clinics/create/", "", clinic, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
