package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/internal/domain/repository"
)

// storeDetailsKey is the record key, shared with the browser tool's storage.
const storeDetailsKey = "storeDetails"

type pebbleStoreDetailsRepository struct {
	db *pebble.DB
}

// NewPebbleStoreDetailsRepository stores the details as one JSON value in a
// local pebble database.
func NewPebbleStoreDetailsRepository(db *pebble.DB) repository.StoreDetailsRepository {
	return &pebbleStoreDetailsRepository{db: db}
}

func (r *pebbleStoreDetailsRepository) Load(ctx context.Context) (*entity.StoreDetails, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, closer, err := r.db.Get([]byte(storeDetailsKey))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("pebble get: %w", err)
	}
	defer closer.Close()

	// Decode through a map so a partial record keeps zero values for
	// missing keys, as the browser tool did.
	var fields map[string]string
	if err := json.Unmarshal(v, &fields); err != nil {
		return nil, fmt.Errorf("decode store details: %w", err)
	}
	details := &entity.StoreDetails{}
	details.ApplyMap(fields)
	return details, nil
}

func (r *pebbleStoreDetailsRepository) Save(ctx context.Context, details *entity.StoreDetails) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := json.Marshal(details.ToMap())
	if err != nil {
		return fmt.Errorf("encode store details: %w", err)
	}
	if err := r.db.Set([]byte(storeDetailsKey), b, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set: %w", err)
	}
	return nil
}
