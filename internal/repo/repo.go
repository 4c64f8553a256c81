package repo

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
)

// ErrNotFound covers both genuine absence and ownership failures so callers
// cannot tell the two apart.
var ErrNotFound = errors.New("not found")

var ErrEmailTaken = errors.New("email already in use")

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

// ownedVendor loads the vendor only when it belongs to accountID.
func ownedVendor(tx *gorm.DB, vendorID, accountID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := tx.Where("id = ? AND account_id = ?", vendorID, accountID).First(&vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &vendor, nil
}

func touchVendor(tx *gorm.DB, vendorID uint, now time.Time) error {
	return tx.Model(&models.Vendor{}).Where("id = ?", vendorID).Update("last_updated", now).Error
}
