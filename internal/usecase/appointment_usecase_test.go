package usecase

import (
	"context"
	"testing"

	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/infrastructure/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyAppointments(t *testing.T) {
	repo := &fakeAppointmentRepo{list: []entity.Appointment{
		{ID: "1", Doctor: entity.AppointmentParty{ID: "7"}, Date: "2024-06-10", Time: "09:00", Status: entity.AppointmentStatusPending},
		{ID: "2", Doctor: entity.AppointmentParty{ID: "7"}, Date: "2024-06-17", Time: "14:00", Status: entity.AppointmentStatusConfirmed},
	}}
	uc := NewAppointmentUsecase(newTestLogger(), repo, &fakeAuditService{})

	list, err := uc.GetMyAppointments(context.Background(), patientSession())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "confirmed", list.Appointments[1].Status)
	assert.Equal(t, []string{"backend-token"}, repo.tokens)

	_, err = uc.GetMyAppointments(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCancelAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	audit := &fakeAuditService{}
	uc := NewAppointmentUsecase(newTestLogger(), repo, audit)

	resp, err := uc.CancelAppointment(context.Background(), patientSession(), "5")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, []string{"5"}, repo.cancelled)
	assert.Equal(t, []string{entity.AuditActionAppointmentCancel}, audit.actions())

	_, err = uc.CancelAppointment(context.Background(), doctorSession(), "5")
	assert.ErrorIs(t, err, ErrWrongRole)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := &fakeAppointmentRepo{err: backend.ErrNotFound}
	uc := NewAppointmentUsecase(newTestLogger(), repo, &fakeAuditService{})

	_, err := uc.CancelAppointment(context.Background(), patientSession(), "404")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	uc := NewAppointmentUsecase(newTestLogger(), repo, &fakeAuditService{})

	resp, err := uc.UpdateStatus(context.Background(), doctorSession(), "5", &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, entity.AppointmentStatusConfirmed, repo.statuses["5"])

	_, err = uc.UpdateStatus(context.Background(), doctorSession(), "5", &dto.UpdateAppointmentStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = uc.UpdateStatus(context.Background(), patientSession(), "5", &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrWrongRole)
}
