package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
)

// vendorOrder puts open vendors first, alphabetical inside each group.
const vendorOrder = "is_open DESC, name ASC"

func (r *GormRepo) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.DB.WithContext(ctx).Order(vendorOrder).Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *GormRepo) ListOpenVendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.DB.WithContext(ctx).Where("is_open = ?", true).Order(vendorOrder).Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}

func (r *GormRepo) GetVendorWithAvailableMenu(ctx context.Context, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.DB.WithContext(ctx).
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("category ASC, name ASC")
		}).
		First(&vendor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func (r *GormRepo) UpdateVendorStatus(ctx context.Context, vendorID, accountID uint, isOpen bool) error {
	res := r.DB.WithContext(ctx).Model(&models.Vendor{}).
		Where("id = ? AND account_id = ?", vendorID, accountID).
		Updates(map[string]any{
			"is_open":      isOpen,
			"last_updated": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
