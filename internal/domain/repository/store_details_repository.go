package repository

import (
	"context"

	"github.com/sangkips/medbill-api/internal/domain/entity"
)

// StoreDetailsRepository persists the single store identity record.
type StoreDetailsRepository interface {
	// Load returns nil, nil when nothing has been saved yet.
	Load(ctx context.Context) (*entity.StoreDetails, error)
	Save(ctx context.Context, details *entity.StoreDetails) error
}
