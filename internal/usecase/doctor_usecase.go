package usecase

import (
	"context"
	"errors"
	"strconv"

	"smart-clinic-gateway/internal/converter"
	"smart-clinic-gateway/internal/delivery/dto"
	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/infrastructure/backend"
	"smart-clinic-gateway/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

// MediaURLResolver turns backend-relative media paths into absolute URLs.
type MediaURLResolver interface {
	ResolveMediaURL(raw string) string
}

type DoctorUsecase interface {
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	GetAllClinics(ctx context.Context) (*dto.ClinicListResponse, error)
	CreateClinic(ctx context.Context, session *entity.Session, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error)
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	clinicRepo   repository.ClinicRepository
	media        MediaURLResolver
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	clinicRepo repository.ClinicRepository,
	media MediaURLResolver,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		clinicRepo:   clinicRepo,
		media:        media,
		auditService: auditService,
	}
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	if doctorID <= 0 {
		return nil, ErrInvalidDoctorID
	}

	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}

	picture := doctor.User.ProfilePicture
	if picture == "" {
		picture = doctor.ProfilePic
	}

	return converter.DoctorToResponse(doctor, u.media.ResolveMediaURL(picture)), nil
}

func (u *doctorUsecase) GetAllClinics(ctx context.Context) (*dto.ClinicListResponse, error) {
	clinics, err := u.clinicRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find all clinics: %+v", err)
		return nil, err
	}

	return &dto.ClinicListResponse{
		Clinics: converter.ClinicsToResponses(clinics),
		Total:   len(clinics),
	}, nil
}

func (u *doctorUsecase) CreateClinic(ctx context.Context, session *entity.Session, req *dto.CreateClinicRequest) (*dto.ClinicResponse, error) {
	clinic, err := u.clinicRepo.Create(ctx, &entity.Clinic{
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
	})
	if err != nil {
		u.log.Warnf("Failed to create clinic %q: %+v", req.Name, err)
		return nil, err
	}

	u.auditService.Record(ctx, session, entity.AuditActionClinicCreate, "clinic", strconv.Itoa(clinic.ID), clinic.Name)

	return converter.ClinicToResponse(clinic), nil
}
