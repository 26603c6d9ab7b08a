package usecase

import (
	"context"
	"errors"
	"time"

	"smart-clinic-gateway/internal/converter"
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/infrastructure/backend"
	"smart-clinic-gateway/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient profile not found")
)

type PatientProfileUsecase interface {
	GetMyProfile(ctx context.Context, session *entity.Session) (*dto.PatientProfileResponse, error)
	UpdateMyProfile(ctx context.Context, session *entity.Session, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error)
}

type patientProfileUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	sessionRepo  repository.SessionRepository
	media        MediaURLResolver
	auditService service.AuditService
	now          func() time.Time
}

func NewPatientProfileUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	sessionRepo repository.SessionRepository,
	media MediaURLResolver,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		log:          log,
		patientRepo:  patientRepo,
		sessionRepo:  sessionRepo,
		media:        media,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *patientProfileUsecase) GetMyProfile(ctx context.Context, session *entity.Session) (*dto.PatientProfileResponse, error) {
	if err := checkPatient(session); err != nil {
		return nil, err
	}

	profile, err := u.patientRepo.FindMe(ctx, session.BackendToken)
	if err != nil {
		return nil, u.mapError("find", session, err)
	}

	return converter.PatientProfileToResponse(profile, u.media.ResolveMediaURL(profile.User.ProfilePicture)), nil
}

// UpdateMyProfile saves the profile on the backend, then refreshes the
// names and email cached in the caller's session.
func (u *patientProfileUsecase) UpdateMyProfile(ctx context.Context, session *entity.Session, req *dto.UpdatePatientProfileRequest) (*dto.PatientProfileResponse, error) {
	if err := checkPatient(session); err != nil {
		return nil, err
	}

	oldValue := map[string]string{
		"first_name": session.User.FirstName,
		"last_name":  session.User.LastName,
		"email":      session.User.Email,
	}

	profile, err := u.patientRepo.UpdateMe(ctx, session.BackendToken, converter.PatientProfileUpdateFromRequest(req))
	if err != nil {
		return nil, u.mapError("update", session, err)
	}

	u.refreshSession(ctx, session, profile)

	u.auditService.Record(ctx, session, entity.AuditActionProfileUpdate, "patient", profile.ID.String(), map[string]interface{}{
		"old": oldValue,
		"new": map[string]string{
			"first_name": profile.User.FirstName,
			"last_name":  profile.User.LastName,
			"email":      profile.User.Email,
		},
	})

	return converter.PatientProfileToResponse(profile, u.media.ResolveMediaURL(profile.User.ProfilePicture)), nil
}

// refreshSession keeps the remaining lifetime of the session. The backend
// already holds the update, so a failed write is only logged.
func (u *patientProfileUsecase) refreshSession(ctx context.Context, session *entity.Session, profile *entity.PatientProfile) {
	ttl := session.ExpiresAt.Sub(u.now())
	if ttl <= 0 {
		return
	}

	session.User.FirstName = profile.User.FirstName
	session.User.LastName = profile.User.LastName
	session.User.Email = profile.User.Email
	if profile.User.ProfilePicture != "" {
		session.User.ProfilePicture = profile.User.ProfilePicture
	}

	if err := u.sessionRepo.Save(ctx, session, ttl); err != nil {
		u.log.Warnf("Failed to refresh session %s after profile update: %+v", session.ID, err)
	}
}

func (u *patientProfileUsecase) mapError(op string, session *entity.Session, err error) error {
	if errors.Is(err, backend.ErrNotFound) {
		return ErrPatientNotFound
	}
	u.log.Warnf("Failed to %s profile of user %s: %+v", op, session.User.ID, err)
	return err
}

func checkPatient(session *entity.Session) error {
	if !session.IsAuthenticated() {
		return ErrUnauthenticated
	}
	if !session.HasRole(entity.RolePatient) {
		return ErrWrongRole
	}
	return nil
}
