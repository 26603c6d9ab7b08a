package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"smart-clinic-gateway/internal/domain/repository"
	"smart-clinic-gateway/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

const (
	storeCleanupInterval = 5 * time.Minute
	storeIdleThreshold   = 30 * time.Minute
)

// ScheduleStoreRegistry keeps one ScheduleStore per session, so each viewer
// has its own displayed doctor. Idle stores are evicted in the background.
type ScheduleStoreRegistry struct {
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	metrics      *metrics.GatewayMetrics
	idleAfter    time.Duration

	stores sync.Map // map[string]*trackedStore

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

type trackedStore struct {
	store    *ScheduleStore
	lastUsed atomic.Int64 // Unix timestamp
}

// NewScheduleStoreRegistry starts the eviction loop. Call Stop during shutdown.
func NewScheduleStoreRegistry(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	m *metrics.GatewayMetrics,
) *ScheduleStoreRegistry {
	return newScheduleStoreRegistry(log, scheduleRepo, m, storeCleanupInterval, storeIdleThreshold)
}

func newScheduleStoreRegistry(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	m *metrics.GatewayMetrics,
	interval, idleAfter time.Duration,
) *ScheduleStoreRegistry {
	r := &ScheduleStoreRegistry{
		log:          log,
		scheduleRepo: scheduleRepo,
		metrics:      m,
		idleAfter:    idleAfter,
		stopChan:     make(chan struct{}),
	}

	r.wg.Add(1)
	go r.cleanupLoop(interval)

	return r
}

// Stop ends the eviction loop. Safe to call multiple times.
func (r *ScheduleStoreRegistry) Stop() {
	if r.stopped.CompareAndSwap(false, true) {
		close(r.stopChan)
		r.wg.Wait()
		r.log.Info("ScheduleStoreRegistry stopped")
	}
}

// ForSession returns the store of sessionID, creating it on first use.
func (r *ScheduleStoreRegistry) ForSession(sessionID string) *ScheduleStore {
	v, ok := r.stores.Load(sessionID)
	if !ok {
		v, _ = r.stores.LoadOrStore(sessionID, &trackedStore{
			store: NewScheduleStore(r.log, r.scheduleRepo, r.metrics),
		})
	}
	tracked := v.(*trackedStore)
	tracked.lastUsed.Store(time.Now().Unix())
	return tracked.store
}

// Drop forgets the store of a session, typically on logout.
func (r *ScheduleStoreRegistry) Drop(sessionID string) {
	r.stores.Delete(sessionID)
}

func (r *ScheduleStoreRegistry) Len() int {
	n := 0
	r.stores.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (r *ScheduleStoreRegistry) cleanupLoop(interval time.Duration) {
	defer r.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			r.log.Debug("Schedule store cleanup goroutine stopping")
			return
		case <-ticker.C:
			r.evictIdle(time.Now())
		}
	}
}

func (r *ScheduleStoreRegistry) evictIdle(now time.Time) int {
	cutoff := now.Add(-r.idleAfter).Unix()
	var evicted int

	r.stores.Range(func(key, value any) bool {
		tracked, ok := value.(*trackedStore)
		if !ok {
			return true
		}
		if tracked.lastUsed.Load() < cutoff {
			r.stores.CompareAndDelete(key, value)
			evicted++
		}
		return true
	})

	if evicted > 0 {
		r.log.Debugf("Evicted %d idle schedule stores", evicted)
	}
	return evicted
}
