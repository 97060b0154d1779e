package service

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/internal/domain/repository"
	"github.com/sangkips/medbill-api/pkg/apperror"
	"github.com/sangkips/medbill-api/pkg/debounce"
	"github.com/sangkips/medbill-api/pkg/metrics"
)

const persistTimeout = 5 * time.Second

// StoreDetailsService keeps the store identity shown on every bill and
// persists it in the background. Persistence is best effort: failures are
// logged and never reach the caller.
type StoreDetailsService struct {
	repo     repository.StoreDetailsRepository
	defaults entity.StoreDetails
	metrics  *metrics.Registry

	mu        sync.RWMutex
	current   entity.StoreDetails
	persister *debounce.Debouncer

	// saveMu orders writes: each save snapshots and writes under it, so a
	// slow earlier write can never land after a newer one.
	saveMu sync.Mutex
}

// NewStoreDetailsService creates a new store details service
func NewStoreDetailsService(
	repo repository.StoreDetailsRepository,
	defaults entity.StoreDetails,
	window time.Duration,
	m *metrics.Registry,
) *StoreDetailsService {
	s := &StoreDetailsService{
		repo:     repo,
		defaults: defaults,
		metrics:  m,
		current:  defaults,
	}
	s.persister = debounce.New(window, func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		s.persist(ctx)
	})
	return s
}

// Init loads the saved details. On first run the defaults are saved so the
// next start finds a record.
func (s *StoreDetailsService) Init(ctx context.Context) {
	saved, err := s.repo.Load(ctx)
	if err != nil {
		log.Printf("Warning: failed to load store details, using defaults: %v", err)
		return
	}
	if saved == nil {
		s.persist(ctx)
		return
	}

	s.mu.Lock()
	s.current = *saved
	s.mu.Unlock()
}

// Current returns the details exactly as stored.
func (s *StoreDetailsService) Current() entity.StoreDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Edit applies user edits. Edited values are uppercased here, at the edit
// boundary, and a persist is scheduled.
func (s *StoreDetailsService) Edit(fields map[string]string) (entity.StoreDetails, error) {
	var unknown []string
	for k := range fields {
		if _, ok := (&entity.StoreDetails{}).Field(k); !ok {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		return s.Current(), apperror.UnknownStoreFields(unknown, entity.StoreFieldKeys)
	}

	upper := make(map[string]string, len(fields))
	for k, v := range fields {
		upper[k] = strings.ToUpper(v)
	}

	s.mu.Lock()
	s.current.ApplyMap(upper)
	updated := s.current
	s.mu.Unlock()

	s.persister.Trigger()
	return updated, nil
}

// SaveNow persists the current details immediately, replacing any pending
// background save.
func (s *StoreDetailsService) SaveNow(ctx context.Context) {
	s.persister.Stop()
	s.persist(ctx)
}

// Close flushes a pending background save.
func (s *StoreDetailsService) Close() {
	s.persister.Flush()
}

// Defaults returns the details written on first run.
func (s *StoreDetailsService) Defaults() entity.StoreDetails {
	return s.defaults
}

func (s *StoreDetailsService) persist(ctx context.Context) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	snapshot := s.Current()
	if err := s.repo.Save(ctx, &snapshot); err != nil {
		log.Printf("Warning: failed to save store details: %v", err)
		if s.metrics != nil {
			s.metrics.PersistFailures.Inc()
		}
	}
}
