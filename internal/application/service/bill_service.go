package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/medbill-api/internal/config"
	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/pkg/apperror"
	"github.com/sangkips/medbill-api/pkg/metrics"
)

// BillService keeps the open bill sessions.
type BillService struct {
	storeService        *StoreDetailsService
	metrics             *metrics.Registry
	window              time.Duration
	defaultJurisdiction string

	mu       sync.RWMutex
	sessions map[uuid.UUID]*BillSession

	// Now is the clock used for new sessions.
	Now func() time.Time
}

// NewBillService creates a new bill service
func NewBillService(storeService *StoreDetailsService, cfg config.BillConfig, m *metrics.Registry) *BillService {
	return &BillService{
		storeService:        storeService,
		metrics:             m,
		window:              cfg.DebounceWindow,
		defaultJurisdiction: cfg.DefaultJurisdiction,
		sessions:            make(map[uuid.UUID]*BillSession),
		Now:                 time.Now,
	}
}

// Create opens a session dated now.
func (s *BillService) Create() *BillSession {
	session := newBillSession(s.Now(), s.window, s.storeDetails, func() {
		if s.metrics != nil {
			s.metrics.PreviewRecompute.Inc()
		}
	})

	s.mu.Lock()
	s.sessions[session.ID] = session
	n := len(s.sessions)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(n))
	}
	return session
}

// Get returns the session with id.
func (s *BillService) Get(id uuid.UUID) (*BillSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.ErrBillNotFound
	}
	return session, nil
}

// Delete closes and forgets the session with id.
func (s *BillService) Delete(id uuid.UUID) error {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	n := len(s.sessions)
	s.mu.Unlock()

	if !ok {
		return apperror.ErrBillNotFound
	}
	session.close()
	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(n))
	}
	return nil
}

// Generate brings the preview up to date and saves the store details now.
func (s *BillService) Generate(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	session, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	session.FlushPreview()
	s.storeService.SaveNow(ctx)
	if s.metrics != nil {
		s.metrics.BillsGenerated.Inc()
	}
	return session.Preview(), nil
}

// Close stops every session's pending preview.
func (s *BillService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, session := range s.sessions {
		session.close()
		delete(s.sessions, id)
	}
}

// storeDetails is the store identity as bills see it: the configured default
// jurisdiction fills a blank one.
func (s *BillService) storeDetails() entity.StoreDetails {
	details := s.storeService.Current()
	if details.Jurisdiction == "" && s.defaultJurisdiction != "" {
		details.Jurisdiction = s.defaultJurisdiction
	}
	return details
}
