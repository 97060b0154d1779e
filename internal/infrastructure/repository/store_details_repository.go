package repository

import (
	"context"
	"errors"

	"github.com/sangkips/medbill-api/internal/domain/entity"
	"github.com/sangkips/medbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type storeDetailsRepository struct {
	db *gorm.DB
}

// NewStoreDetailsRepository creates a postgres-backed store details repository
func NewStoreDetailsRepository(db *gorm.DB) repository.StoreDetailsRepository {
	return &storeDetailsRepository{db: db}
}

// Load retrieves the store details row, or nil if none has been saved
func (r *storeDetailsRepository) Load(ctx context.Context) (*entity.StoreDetails, error) {
	var details entity.StoreDetails
	err := r.db.WithContext(ctx).Order("updated_at desc").First(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

// Save creates the row on first use and overwrites it afterwards
func (r *storeDetailsRepository) Save(ctx context.Context, details *entity.StoreDetails) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.StoreDetails
		err := tx.First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		row := *details
		if err == nil {
			row.ID = existing.ID
			if err := tx.Save(&row).Error; err != nil {
				return err
			}
		} else if err := tx.Create(&row).Error; err != nil {
			return err
		}
		details.ID = row.ID
		return nil
	})
}
