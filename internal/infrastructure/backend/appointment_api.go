package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
)

type appointmentAPI struct {
	client *Client
}

func NewAppointmentRepository(client *Client) repository.AppointmentRepository {
	return &appointmentAPI{client: client}
}

func (r *appointmentAPI) Create(ctx context.Context, token string, req *entity.AppointmentRequest) (*entity.Appointment, error) {
	var appointment entity.Appointment
	if err := r.client.do(ctx, "appointments.create", http.MethodPost, "/appointments/create/", token, req, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentAPI) FindAll(ctx context.Context, token string) ([]entity.Appointment, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, "appointments.list", http.MethodGet, "/appointments/", token, nil, &raw); err != nil {
		return nil, err
	}

	var appointments []entity.Appointment
	if err := decodeList(raw, &appointments); err != nil {
		return nil, fmt.Errorf("decode appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentAPI) UpdateStatus(ctx context.Context, token string, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	var appointment entity.Appointment
	body := map[string]string{"status": string(status)}
	if err := r.client.do(ctx, "appointments.status", http.MethodPatch, appointmentPath(id), token, body, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentAPI) Cancel(ctx context.Context, token string, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	body := map[string]string{"status": string(entity.AppointmentStatusCancelled)}
	if err := r.client.do(ctx, "appointments.cancel", http.MethodPut, appointmentPath(id), token, body, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func appointmentPath(id string) string {
	return "/appointments/" + url.PathEscape(id) + "/"
}
