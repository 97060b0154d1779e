package repository

import (
	"context"
	"sync"

	"github.com/sangkips/medbill-api/internal/domain/entity"
)

// MemoryStoreDetailsRepository keeps the record in process memory. It is used
// for ephemeral runs and tests.
type MemoryStoreDetailsRepository struct {
	mu      sync.RWMutex
	details *entity.StoreDetails
	saves   int
	fail    error
}

// NewMemoryStoreDetailsRepository creates an empty in-memory store details repository
func NewMemoryStoreDetailsRepository() *MemoryStoreDetailsRepository {
	return &MemoryStoreDetailsRepository{}
}

// Load returns a copy of the saved record, or nil when nothing was saved
func (r *MemoryStoreDetailsRepository) Load(ctx context.Context) (*entity.StoreDetails, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.fail != nil {
		return nil, r.fail
	}
	if r.details == nil {
		return nil, nil
	}
	cp := *r.details
	return &cp, nil
}

// Save stores a copy of details
func (r *MemoryStoreDetailsRepository) Save(ctx context.Context, details *entity.StoreDetails) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail != nil {
		return r.fail
	}
	cp := *details
	r.details = &cp
	r.saves++
	return nil
}

// Saves reports how many successful Save calls were made.
func (r *MemoryStoreDetailsRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}

// SetFail makes every later Load and Save return err. Pass nil to recover.
func (r *MemoryStoreDetailsRepository) SetFail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}
