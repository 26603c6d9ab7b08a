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
	"smart-clinic-gateway/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownRole        = errors.New("account has no recognised role")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrSessionNotFound    = errors.New("session expired or revoked")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, session *entity.Session) error
	Authenticate(ctx context.Context, accessToken string) (*entity.Session, error)
	GetCurrentUser(ctx context.Context, session *entity.Session) (*dto.UserResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (map[string]interface{}, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (map[string]interface{}, error)
}

type authUsecase struct {
	log          *logrus.Logger
	authRepo     repository.AuthRepository
	clinicRepo   repository.ClinicRepository
	sessionRepo  repository.SessionRepository
	jwtService   *jwt.JWTService
	stores       *ScheduleStoreRegistry
	auditService service.AuditService
	defaultRole  entity.Role
	now          func() time.Time
}

func NewAuthUsecase(
	log *logrus.Logger,
	authRepo repository.AuthRepository,
	clinicRepo repository.ClinicRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
	stores *ScheduleStoreRegistry,
	auditService service.AuditService,
	defaultRole string,
) AuthUsecase {
	return &authUsecase{
		log:          log,
		authRepo:     authRepo,
		clinicRepo:   clinicRepo,
		sessionRepo:  sessionRepo,
		jwtService:   jwtService,
		stores:       stores,
		auditService: auditService,
		defaultRole:  entity.Role(defaultRole),
		now:          time.Now,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	result, err := u.authRepo.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			return nil, ErrInvalidCredentials
		}
		u.log.Warnf("Failed to log in %s: %+v", req.Username, err)
		return nil, err
	}

	userType := result.User.UserType
	if userType == "" && (result.User.IsStaff || result.User.IsSuperuser) {
		userType = "staff"
	}
	role, ok := entity.ParseRole(userType, u.defaultRole)
	if !ok {
		u.log.Warnf("Rejected login of %s: unknown user_type %q", req.Username, result.User.UserType)
		return nil, ErrUnknownRole
	}

	now := u.now()
	expiry := u.jwtService.GetAccessExpiry()
	session := &entity.Session{
		ID:           uuid.New().String(),
		User:         result.User,
		Role:         role,
		BackendToken: result.Token,
		CreatedAt:    now,
		ExpiresAt:    now.Add(expiry),
	}

	accessToken, _, err := u.jwtService.GenerateAccessToken(session.ID, session.User.ID.String(), string(role))
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, session, expiry); err != nil {
		u.log.Warnf("Failed to store session in Redis: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, session, entity.AuditActionUserLogin, "user", session.User.ID.String(), map[string]string{
		"username": session.User.Username,
	})

	return &dto.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(expiry.Seconds()),
		User:        *converter.SessionUserToResponse(session),
		Dashboard:   role.DashboardPath(),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return ErrUnauthenticated
	}

	if err := u.sessionRepo.Delete(ctx, session.ID); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return err
	}
	u.stores.Drop(session.ID)

	u.auditService.Record(ctx, session, entity.AuditActionUserLogout, "user", session.User.ID.String(), nil)
	return nil
}

// Authenticate resolves a gateway access token to its live session.
func (u *authUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Session, error) {
	claims, err := u.jwtService.ValidateToken(accessToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	session, err := u.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		u.log.Warnf("Failed to load session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.User.ID.String() != claims.UserID {
		return nil, ErrInvalidToken
	}

	return session, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, session *entity.Session) (*dto.UserResponse, error) {
	if session == nil {
		return nil, ErrUnauthenticated
	}
	return converter.SessionUserToResponse(session), nil
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (map[string]interface{}, error) {
	form := map[string]interface{}{
		"username":               req.Username,
		"email":                  req.Email,
		"password":               req.Password,
		"password2":              req.Password2,
		"first_name":             req.FirstName,
		"last_name":              req.LastName,
		"phone":                  req.Phone,
		"address":                req.Address,
		"date_of_birth":          req.DateOfBirth,
		"gender":                 req.Gender,
		"medical_history":        req.MedicalHistory,
		"allergies":              req.Allergies,
		"emergency_contact":      req.EmergencyContact,
		"emergency_contact_name": req.EmergencyContactName,
		"blood_type":             req.BloodType,
		"user_type":              string(entity.RolePatient),
	}

	return u.register(ctx, req.Username, form)
}

// RegisterDoctor creates the doctor account, creating the clinic first when
// the form carries a new one instead of an existing clinic id.
func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (map[string]interface{}, error) {
	clinicID := req.Clinic
	if req.NewClinic != nil {
		clinic, err := u.clinicRepo.Create(ctx, &entity.Clinic{
			Name:        req.NewClinic.Name,
			Address:     req.NewClinic.Address,
			Phone:       req.NewClinic.Phone,
			Email:       req.NewClinic.Email,
			Description: req.NewClinic.Description,
		})
		if err != nil {
			u.log.Warnf("Failed to create clinic %q: %+v", req.NewClinic.Name, err)
			return nil, err
		}
		clinicID = clinic.ID
	}

	form := map[string]interface{}{
		"username":         req.Username,
		"email":            req.Email,
		"password":         req.Password,
		"password2":        req.Password2,
		"first_name":       req.FirstName,
		"last_name":        req.LastName,
		"phone":            req.Phone,
		"address":          req.Address,
		"date_of_birth":    req.DateOfBirth,
		"gender":           req.Gender,
		"specialization":   req.Specialization,
		"license_number":   req.LicenseNumber,
		"experience_years": req.ExperienceYears,
		"consultation_fee": req.ConsultationFee,
		"bio":              req.Bio,
		"clinic":           clinicID,
		"user_type":        string(entity.RoleDoctor),
	}

	return u.register(ctx, req.Username, form)
}

func (u *authUsecase) register(ctx context.Context, username string, form map[string]interface{}) (map[string]interface{}, error) {
	created, err := u.authRepo.Register(ctx, form)
	if err != nil {
		u.log.Warnf("Failed to register %s: %+v", username, err)
		return nil, err
	}
	delete(created, "password")
	delete(created, "password2")

	u.auditService.Record(ctx, nil, entity.AuditActionUserRegister, "user", username, map[string]interface{}{
		"user_type": form["user_type"],
	})
	return created, nil
}
