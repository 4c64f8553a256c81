package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
)

const menuOrder = "category ASC, name ASC"

func (r *GormRepo) ListMenu(ctx context.Context, vendorID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.DB.WithContext(ctx).Where("vendor_id = ?", vendorID).Order(menuOrder).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) ListCategories(ctx context.Context, vendorID uint) ([]string, error) {
	var categories []string
	err := r.DB.WithContext(ctx).Model(&models.MenuItem{}).
		Where("vendor_id = ?", vendorID).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormRepo) GetMenuItem(ctx context.Context, vendorID, itemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.DB.WithContext(ctx).Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) CreateMenuItem(ctx context.Context, vendorID, accountID uint, item *models.MenuItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedVendor(tx, vendorID, accountID); err != nil {
			return err
		}

		item.VendorID = vendorID
		if err := tx.Create(item).Error; err != nil {
			return err
		}

		return touchVendor(tx, vendorID, time.Now().UTC())
	})
}

// UpdateMenuItem overwrites name/price/availability/category from fields.
func (r *GormRepo) UpdateMenuItem(ctx context.Context, vendorID, accountID, itemID uint, fields models.MenuItem) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedVendor(tx, vendorID, accountID); err != nil {
			return err
		}

		if err := tx.Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		item.Name = fields.Name
		item.Price = fields.Price
		item.IsAvailable = fields.IsAvailable
		item.Category = fields.Category

		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		return touchVendor(tx, vendorID, time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) DeleteMenuItem(ctx context.Context, vendorID, accountID, itemID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedVendor(tx, vendorID, accountID); err != nil {
			return err
		}

		res := tx.Where("id = ? AND vendor_id = ?", itemID, vendorID).Delete(&models.MenuItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		return touchVendor(tx, vendorID, time.Now().UTC())
	})
}

func (r *GormRepo) ToggleAvailability(ctx context.Context, vendorID, accountID, itemID uint, isAvailable bool) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedVendor(tx, vendorID, accountID); err != nil {
			return err
		}

		if err := tx.Where("id = ? AND vendor_id = ?", itemID, vendorID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		item.IsAvailable = isAvailable

		if err := tx.Save(&item).Error; err != nil {
			return err
		}

		return touchVendor(tx, vendorID, time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// BatchToggleAvailability flips availability on the subset of itemIDs that
// belong to the vendor. IDs that do not exist or belong elsewhere are ignored;
// an empty subset is ErrNotFound. Returns the number of rows actually updated.
func (r *GormRepo) BatchToggleAvailability(ctx context.Context, vendorID, accountID uint, itemIDs []uint, isAvailable bool) (int64, error) {
	var updated int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedVendor(tx, vendorID, accountID); err != nil {
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&models.MenuItem{}).
			Where("id IN ? AND vendor_id = ?", itemIDs, vendorID).
			Updates(map[string]any{
				"is_available": isAvailable,
				"updated_at":   now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		updated = res.RowsAffected

		return touchVendor(tx, vendorID, now)
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// ReplaceMenu drops the vendor's menu and inserts items in its place. Item ids
// are regenerated.
func (r *GormRepo) ReplaceMenu(ctx context.Context, vendorID, accountID uint, items []models.MenuItem) ([]models.MenuItem, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ownedVendor(tx, vendorID, accountID); err != nil {
			return err
		}

		if err := tx.Where("vendor_id = ?", vendorID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].ID = 0
			items[i].VendorID = vendorID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return touchVendor(tx, vendorID, time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}
