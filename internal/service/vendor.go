package service

import (
	"context"

	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

type VendorService struct {
	Repo *repo.GormRepo
}

func (s *VendorService) ListVendors(ctx context.Context) ([]transport.VendorResponse, error) {
	vendors, err := s.Repo.ListVendors(ctx)
	if err != nil {
		return nil, err
	}
	return transport.VendorsFromModels(vendors), nil
}

func (s *VendorService) ListOpenVendors(ctx context.Context) ([]transport.VendorResponse, error) {
	vendors, err := s.Repo.ListOpenVendors(ctx)
	if err != nil {
		return nil, err
	}
	return transport.VendorsFromModels(vendors), nil
}

// GetVendor returns the vendor with its available menu items only.
func (s *VendorService) GetVendor(ctx context.Context, id uint) (*transport.VendorDetailResponse, error) {
	vendor, err := s.Repo.GetVendorWithAvailableMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := transport.VendorDetailFromModel(vendor)
	return &detail, nil
}

func (s *VendorService) UpdateStatus(ctx context.Context, vendorID, accountID uint, isOpen bool) error {
	return s.Repo.UpdateVendorStatus(ctx, vendorID, accountID, isOpen)
}
