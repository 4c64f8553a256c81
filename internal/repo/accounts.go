package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
)

func (r *GormRepo) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// CreateVendorAccount creates the account and its vendor profile in one
// transaction, so a failed vendor insert never leaves an orphaned account.
func (r *GormRepo) CreateVendorAccount(ctx context.Context, account *models.Account, vendor *models.Vendor) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Account
		err := tx.Where("email = ?", account.Email).First(&existing).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(account).Error; err != nil {
			return err
		}

		vendor.AccountID = account.ID
		return tx.Create(vendor).Error
	})
}

func (r *GormRepo) FindVendorByAccount(ctx context.Context, accountID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.DB.WithContext(ctx).Where("account_id = ?", accountID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}
