package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"smart-clinic-gateway/internal/domain/entity"
	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrStaleLoad           = errors.New("schedule load superseded by a newer load")
	ErrScheduleUnavailable = errors.New("schedules unavailable")
	ErrNoScheduleLoaded    = errors.New("no doctor selected")
)

// ScheduleSnapshot is an immutable view of the store at one point in time.
type ScheduleSnapshot struct {
	DoctorID int
	Entries  []entity.ScheduleEntry
	Err      error
}

func (s ScheduleSnapshot) RecurringSubset() []entity.ScheduleEntry {
	return filterEntries(s.Entries, entity.ScheduleKindRecurring)
}

func (s ScheduleSnapshot) SpecificSubset() []entity.ScheduleEntry {
	return filterEntries(s.Entries, entity.ScheduleKindSpecific)
}

func filterEntries(entries []entity.ScheduleEntry, kind entity.ScheduleKind) []entity.ScheduleEntry {
	out := make([]entity.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if e.Kind == kind && e.IsAvailable {
			out = append(out, e)
		}
	}
	return out
}

// ScheduleStore holds the schedule entries of the doctor currently on display.
//
// The entry list is replaced wholesale by each completed load. When loads
// overlap, only the most recently started one is applied.
type ScheduleStore struct {
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	metrics      *metrics.GatewayMetrics

	mu         sync.RWMutex
	generation uint64
	doctorID   int
	entries    []entity.ScheduleEntry
	loadErr    error
}

func NewScheduleStore(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	m *metrics.GatewayMetrics,
) *ScheduleStore {
	return &ScheduleStore{
		log:          log,
		scheduleRepo: scheduleRepo,
		metrics:      m,
		loadErr:      ErrNoScheduleLoaded,
	}
}

// Load fetches the schedules of doctorID and replaces the held entries.
// It returns ErrStaleLoad when another Load started after this one.
func (s *ScheduleStore) Load(ctx context.Context, doctorID int) ([]entity.ScheduleEntry, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	entries, fetchErr := s.scheduleRepo.FindByDoctorID(ctx, doctorID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.metrics.ObserveScheduleLoad("stale")
		s.log.Debugf("Discarding stale schedule load for doctor %d", doctorID)
		return nil, ErrStaleLoad
	}

	s.doctorID = doctorID
	if fetchErr != nil {
		s.entries = nil
		s.loadErr = fmt.Errorf("%w: %w", ErrScheduleUnavailable, fetchErr)
		s.metrics.ObserveScheduleLoad("failed")
		s.log.Warnf("Failed to load schedules for doctor %d: %+v", doctorID, fetchErr)
		return nil, s.loadErr
	}

	s.entries = make([]entity.ScheduleEntry, len(entries))
	copy(s.entries, entries)
	s.loadErr = nil
	s.metrics.ObserveScheduleLoad("applied")

	return s.copyLocked(), nil
}

// Snapshot returns the current state. Failed or missing loads yield no entries.
func (s *ScheduleStore) Snapshot() ScheduleSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ScheduleSnapshot{
		DoctorID: s.doctorID,
		Entries:  s.copyLocked(),
		Err:      s.loadErr,
	}
}

func (s *ScheduleStore) Entries() []entity.ScheduleEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *ScheduleStore) RecurringSubset() []entity.ScheduleEntry {
	return s.Snapshot().RecurringSubset()
}

func (s *ScheduleStore) SpecificSubset() []entity.ScheduleEntry {
	return s.Snapshot().SpecificSubset()
}

// DoctorID is the doctor of the last applied load, zero before any load.
func (s *ScheduleStore) DoctorID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doctorID
}

func (s *ScheduleStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// copyLocked must be called with mu held.
func (s *ScheduleStore) copyLocked() []entity.ScheduleEntry {
	out := make([]entity.ScheduleEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
