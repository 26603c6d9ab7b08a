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

func TestGetDoctor(t *testing.T) {
	doctors := &fakeDoctorRepo{doctor: &entity.Doctor{
		ID:             7,
		Specialization: "Cardiology",
		User: entity.DoctorUser{
			FirstName:      "Gregory",
			LastName:       "House",
			ProfilePicture: "/media/profiles/house.png",
		},
		Clinic: &entity.Clinic{ID: 2, Name: "Princeton"},
	}}
	uc := NewDoctorUsecase(newTestLogger(), doctors, &fakeClinicRepo{}, staticMedia{}, &fakeAuditService{})

	resp, err := uc.GetDoctor(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Dr. Gregory House", resp.Name)
	assert.Equal(t, "http://backend.test/media/profiles/house.png", resp.ProfilePicture)
	require.NotNil(t, resp.Clinic)
	assert.Equal(t, "Princeton", resp.Clinic.Name)
}

func TestGetDoctor_Errors(t *testing.T) {
	uc := NewDoctorUsecase(newTestLogger(), &fakeDoctorRepo{err: backend.ErrNotFound}, &fakeClinicRepo{}, staticMedia{}, &fakeAuditService{})

	_, err := uc.GetDoctor(context.Background(), 7)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = uc.GetDoctor(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidDoctorID)
}

func TestClinics(t *testing.T) {
	clinics := &fakeClinicRepo{clinics: []entity.Clinic{{ID: 1, Name: "North"}, {ID: 2, Name: "South"}}}
	audit := &fakeAuditService{}
	uc := NewDoctorUsecase(newTestLogger(), &fakeDoctorRepo{}, clinics, staticMedia{}, audit)

	list, err := uc.GetAllClinics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, "South", list.Clinics[1].Name)

	created, err := uc.CreateClinic(context.Background(), doctorSession(), &dto.CreateClinicRequest{Name: "East"})
	require.NoError(t, err)
	assert.Equal(t, 31, created.ID)
	assert.Equal(t, []string{entity.AuditActionClinicCreate}, audit.actions())
}
