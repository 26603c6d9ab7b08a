package usecase

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 10, 30, 0, 0, time.Local)
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func recurring(id int, day, start, end string) entity.ScheduleEntry {
	return entity.ScheduleEntry{
		ID:          id,
		DoctorID:    7,
		Kind:        entity.ScheduleKindRecurring,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
}

func specific(id int, on time.Time, start, end string) entity.ScheduleEntry {
	return entity.ScheduleEntry{
		ID:           id,
		DoctorID:     7,
		Kind:         entity.ScheduleKindSpecific,
		SpecificDate: &on,
		StartTime:    start,
		EndTime:      end,
		IsAvailable:  true,
	}
}

// fakeScheduleRepo serves canned schedules per doctor. A doctor listed in
// gates blocks until its channel is closed.
type fakeScheduleRepo struct {
	mu       sync.Mutex
	byDoctor map[int][]entity.ScheduleEntry
	errs     map[int]error
	gates    map[int]chan struct{}
	started  chan int
	created  []*entity.ScheduleEntry
	tokens   []string
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		byDoctor: map[int][]entity.ScheduleEntry{},
		errs:     map[int]error{},
		gates:    map[int]chan struct{}{},
	}
}

func (r *fakeScheduleRepo) FindByDoctorID(ctx context.Context, doctorID int) ([]entity.ScheduleEntry, error) {
	r.mu.Lock()
	gate := r.gates[doctorID]
	started := r.started
	r.mu.Unlock()

	if started != nil {
		started <- doctorID
	}
	if gate != nil {
		<-gate
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errs[doctorID]; err != nil {
		return nil, err
	}
	return r.byDoctor[doctorID], nil
}

func (r *fakeScheduleRepo) Create(ctx context.Context, token string, entry *entity.ScheduleEntry) (*entity.ScheduleEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.errs[-1]; err != nil {
		return nil, err
	}
	r.created = append(r.created, entry)
	r.tokens = append(r.tokens, token)
	out := *entry
	out.ID = 100 + len(r.created)
	return &out, nil
}

type fakeAppointmentRepo struct {
	requests []*entity.AppointmentRequest
	tokens   []string
	err      error

	cancelled []string
	statuses  map[string]entity.AppointmentStatus
	list      []entity.Appointment
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, token string, req *entity.AppointmentRequest) (*entity.Appointment, error) {
	r.requests = append(r.requests, req)
	r.tokens = append(r.tokens, token)
	if r.err != nil {
		return nil, r.err
	}
	return &entity.Appointment{
		ID:     "55",
		Doctor: entity.AppointmentParty{ID: entity.ID(strconv.Itoa(req.DoctorID))},
		Date:   req.Date,
		Time:   req.Time,
		Reason: req.Reason,
		Status: entity.AppointmentStatusPending,
	}, nil
}

func (r *fakeAppointmentRepo) FindAll(ctx context.Context, token string) ([]entity.Appointment, error) {
	r.tokens = append(r.tokens, token)
	if r.err != nil {
		return nil, r.err
	}
	return r.list, nil
}

func (r *fakeAppointmentRepo) UpdateStatus(ctx context.Context, token string, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.statuses == nil {
		r.statuses = map[string]entity.AppointmentStatus{}
	}
	r.statuses[id] = status
	return &entity.Appointment{ID: entity.ID(id), Status: status}, nil
}

func (r *fakeAppointmentRepo) Cancel(ctx context.Context, token string, id string) (*entity.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.cancelled = append(r.cancelled, id)
	return &entity.Appointment{ID: entity.ID(id), Status: entity.AppointmentStatusCancelled}, nil
}

type fakeAuthRepo struct {
	result   *repository.LoginResult
	err      error
	forms    []map[string]interface{}
	regReply map[string]interface{}
}

func (r *fakeAuthRepo) Login(ctx context.Context, username, password string) (*repository.LoginResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.result, nil
}

func (r *fakeAuthRepo) Register(ctx context.Context, form map[string]interface{}) (map[string]interface{}, error) {
	r.forms = append(r.forms, form)
	if r.err != nil {
		return nil, r.err
	}
	reply := map[string]interface{}{"id": 9, "username": form["username"], "password": form["password"]}
	for k, v := range r.regReply {
		reply[k] = v
	}
	return reply, nil
}

type fakeClinicRepo struct {
	clinics []entity.Clinic
	created []*entity.Clinic
	err     error
}

func (r *fakeClinicRepo) FindAll(ctx context.Context) ([]entity.Clinic, error) {
	return r.clinics, r.err
}

func (r *fakeClinicRepo) Create(ctx context.Context, clinic *entity.Clinic) (*entity.Clinic, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = append(r.created, clinic)
	out := *clinic
	out.ID = 31
	return &out, nil
}

type fakeDoctorRepo struct {
	doctor *entity.Doctor
	err    error
}

func (r *fakeDoctorRepo) FindByID(ctx context.Context, doctorID int) (*entity.Doctor, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.doctor, nil
}

type fakePatientRepo struct {
	profile *entity.PatientProfile
	updates []*entity.PatientProfileUpdate
	tokens  []string
	err     error
}

func (r *fakePatientRepo) FindMe(ctx context.Context, token string) (*entity.PatientProfile, error) {
	r.tokens = append(r.tokens, token)
	if r.err != nil {
		return nil, r.err
	}
	return r.profile, nil
}

func (r *fakePatientRepo) UpdateMe(ctx context.Context, token string, update *entity.PatientProfileUpdate) (*entity.PatientProfile, error) {
	r.tokens = append(r.tokens, token)
	r.updates = append(r.updates, update)
	if r.err != nil {
		return nil, r.err
	}
	out := *r.profile
	out.User.FirstName = update.FirstName
	out.User.LastName = update.LastName
	out.User.Email = update.Email
	out.User.Phone = update.Phone
	out.BloodType = update.BloodType
	return &out, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	ttls     map[string]time.Duration
	err      error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.Session{}, ttls: map[string]time.Duration{}}
}

func (r *fakeSessionRepo) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	if r.err != nil {
		return r.err
	}
	r.sessions[session.ID] = session
	r.ttls[session.ID] = ttl
	return nil
}

func (r *fakeSessionRepo) FindByID(ctx context.Context, sessionID string) (*entity.Session, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sessions[sessionID], nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	if r.err != nil {
		return r.err
	}
	delete(r.sessions, sessionID)
	return nil
}

type auditRecord struct {
	action   string
	entityID string
	value    interface{}
}

type fakeAuditService struct {
	mu      sync.Mutex
	records []auditRecord
}

func (s *fakeAuditService) Record(ctx context.Context, actor *entity.Session, action string, entityName string, entityID string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, auditRecord{action: action, entityID: entityID, value: value})
}

func (s *fakeAuditService) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.action
	}
	return out
}

type fakeAuditLogRepo struct {
	logs  []entity.AuditLog
	limit int
	err   error
}

func (r *fakeAuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.logs = append(r.logs, *log)
	return r.err
}

func (r *fakeAuditLogRepo) FindAll(ctx context.Context, limit int) ([]entity.AuditLog, error) {
	r.limit = limit
	return r.logs, r.err
}

func (r *fakeAuditLogRepo) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.logs {
		if r.logs[i].ID == id {
			return &r.logs[i], nil
		}
	}
	return nil, nil
}

type staticMedia struct{}

func (staticMedia) ResolveMediaURL(raw string) string {
	if raw == "" {
		return ""
	}
	return "http://backend.test" + raw
}

func patientSession() *entity.Session {
	return &entity.Session{
		ID:           "sess-patient",
		User:         entity.User{ID: "12", Username: "jane", UserType: "patient"},
		Role:         entity.RolePatient,
		BackendToken: "backend-token",
	}
}

func doctorSession() *entity.Session {
	return &entity.Session{
		ID:           "sess-doctor",
		User:         entity.User{ID: "3", Username: "drwho", UserType: "doctor", DoctorID: "7"},
		Role:         entity.RoleDoctor,
		BackendToken: "doctor-token",
	}
}
