package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/infrastructure/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janeProfile() *entity.PatientProfile {
	return &entity.PatientProfile{
		ID:        "4",
		BloodType: "O+",
		Allergies: "penicillin",
		User: entity.PatientUser{
			ID:             "12",
			Username:       "jane",
			Email:          "jane@example.com",
			FirstName:      "Jane",
			LastName:       "Doe",
			Phone:          "08123456789",
			ProfilePicture: "/media/jane.png",
		},
	}
}

func newPatientProfileUsecase(repo *fakePatientRepo, sessions *fakeSessionRepo, audit *fakeAuditService) *patientProfileUsecase {
	u := NewPatientProfileUsecase(newTestLogger(), repo, sessions, staticMedia{}, audit).(*patientProfileUsecase)
	u.now = func() time.Time { return time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC) }
	return u
}

func TestPatientProfileUsecase_GetMyProfile(t *testing.T) {
	repo := &fakePatientRepo{profile: janeProfile()}
	u := newPatientProfileUsecase(repo, newFakeSessionRepo(), &fakeAuditService{})

	resp, err := u.GetMyProfile(context.Background(), patientSession())
	require.NoError(t, err)

	assert.Equal(t, "4", resp.ID)
	assert.Equal(t, "12", resp.UserID)
	assert.Equal(t, "Jane Doe", resp.FullName)
	assert.Equal(t, "penicillin", resp.Allergies)
	assert.Equal(t, "http://backend.test/media/jane.png", resp.ProfilePicture)
	assert.Equal(t, []string{"backend-token"}, repo.tokens)
}

func TestPatientProfileUsecase_RejectsOtherRoles(t *testing.T) {
	repo := &fakePatientRepo{profile: janeProfile()}
	u := newPatientProfileUsecase(repo, newFakeSessionRepo(), &fakeAuditService{})
	req := &dto.UpdatePatientProfileRequest{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}

	_, err := u.GetMyProfile(context.Background(), nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = u.GetMyProfile(context.Background(), doctorSession())
	assert.ErrorIs(t, err, ErrWrongRole)

	_, err = u.UpdateMyProfile(context.Background(), doctorSession(), req)
	assert.ErrorIs(t, err, ErrWrongRole)

	assert.Empty(t, repo.tokens)
}

func TestPatientProfileUsecase_MapsMissingProfile(t *testing.T) {
	repo := &fakePatientRepo{err: fmt.Errorf("patients.me: %w", backend.ErrNotFound)}
	u := newPatientProfileUsecase(repo, newFakeSessionRepo(), &fakeAuditService{})

	_, err := u.GetMyProfile(context.Background(), patientSession())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientProfileUsecase_UpdateRefreshesSessionAndAudits(t *testing.T) {
	repo := &fakePatientRepo{profile: janeProfile()}
	sessions := newFakeSessionRepo()
	audit := &fakeAuditService{}
	u := newPatientProfileUsecase(repo, sessions, audit)

	session := patientSession()
	session.User.FirstName = "Jane"
	session.User.Email = "jane@example.com"
	session.ExpiresAt = u.now().Add(2 * time.Hour)

	resp, err := u.UpdateMyProfile(context.Background(), session, &dto.UpdatePatientProfileRequest{
		FirstName: "  Janet ",
		LastName:  "Doe",
		Email:     "janet@example.com",
		Phone:     "08129999999",
		BloodType: "A+",
	})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, "Janet", repo.updates[0].FirstName)
	assert.Equal(t, "Janet Doe", resp.FullName)
	assert.Equal(t, "A+", resp.BloodType)

	stored := sessions.sessions["sess-patient"]
	require.NotNil(t, stored)
	assert.Equal(t, "Janet", stored.User.FirstName)
	assert.Equal(t, "janet@example.com", stored.User.Email)
	assert.Equal(t, 2*time.Hour, sessions.ttls["sess-patient"])

	assert.Equal(t, []string{entity.AuditActionProfileUpdate}, audit.actions())
	value := audit.records[0].value.(map[string]interface{})
	assert.Equal(t, "jane@example.com", value["old"].(map[string]string)["email"])
	assert.Equal(t, "janet@example.com", value["new"].(map[string]string)["email"])
	assert.Equal(t, "4", audit.records[0].entityID)
}

func TestPatientProfileUsecase_UpdateSurvivesSessionStoreFailure(t *testing.T) {
	repo := &fakePatientRepo{profile: janeProfile()}
	sessions := newFakeSessionRepo()
	sessions.err = errors.New("redis down")
	audit := &fakeAuditService{}
	u := newPatientProfileUsecase(repo, sessions, audit)

	session := patientSession()
	session.ExpiresAt = u.now().Add(time.Hour)

	_, err := u.UpdateMyProfile(context.Background(), session, &dto.UpdatePatientProfileRequest{
		FirstName: "Jane", LastName: "Doe", Email: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{entity.AuditActionProfileUpdate}, audit.actions())
}

func TestPatientProfileUsecase_UpdatePassesBackendRejection(t *testing.T) {
	rejected := &backend.RemoteRejectedError{StatusCode: 400, FieldErrors: map[string][]string{"email": {"taken"}}}
	repo := &fakePatientRepo{profile: janeProfile(), err: rejected}
	audit := &fakeAuditService{}
	u := newPatientProfileUsecase(repo, newFakeSessionRepo(), audit)

	_, err := u.UpdateMyProfile(context.Background(), patientSession(), &dto.UpdatePatientProfileRequest{
		FirstName: "Jane", LastName: "Doe", Email: "taken@example.com",
	})
	_, ok := backend.AsRemoteRejected(err)
	assert.True(t, ok)
	assert.Empty(t, audit.actions())
}
