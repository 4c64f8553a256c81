package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
)

func seedVendor(t *testing.T, r *repo.GormRepo, name string, isOpen bool, accountID uint) *models.Vendor {
	t.Helper()

	vendor := models.Vendor{
		Name:           name,
		Location:       "somewhere",
		WhatsAppNumber: "+15550000000",
		IsOpen:         isOpen,
		LastUpdated:    time.Now().UTC(),
		AccountID:      accountID,
	}
	require.NoError(t, r.DB.Create(&vendor).Error)
	return &vendor
}

func TestVendorService_ListVendors_Ordering(t *testing.T) {
	r := newTestRepo(t)
	svc := &VendorService{Repo: r}
	ctx := context.Background()

	seedVendor(t, r, "Alpha", false, 1)
	seedVendor(t, r, "Zed", true, 2)
	seedVendor(t, r, "Beta", true, 3)
	seedVendor(t, r, "Gamma", false, 4)

	vendors, err := svc.ListVendors(ctx)
	require.NoError(t, err)
	require.Len(t, vendors, 4)

	names := make([]string, len(vendors))
	for i, v := range vendors {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"Beta", "Zed", "Alpha", "Gamma"}, names)
}

func TestVendorService_ListOpenVendors(t *testing.T) {
	r := newTestRepo(t)
	svc := &VendorService{Repo: r}

	seedVendor(t, r, "Closed", false, 1)
	seedVendor(t, r, "Open B", true, 2)
	seedVendor(t, r, "Open A", true, 3)

	vendors, err := svc.ListOpenVendors(context.Background())
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	assert.Equal(t, "Open A", vendors[0].Name)
	assert.Equal(t, "Open B", vendors[1].Name)
	for _, v := range vendors {
		assert.True(t, v.IsOpen)
	}
}

func TestVendorService_GetVendor_OnlyAvailableItems(t *testing.T) {
	r := newTestRepo(t)
	svc := &VendorService{Repo: r}
	ctx := context.Background()

	vendor := seedVendor(t, r, "Taco Cart", true, 1)
	items := []models.MenuItem{
		{Name: "Carnitas", Price: 8.5, IsAvailable: true, Category: "Tacos", VendorID: vendor.ID},
		{Name: "Horchata", Price: 3, IsAvailable: false, Category: "Drinks", VendorID: vendor.ID},
		{Name: "Al Pastor", Price: 9, IsAvailable: true, Category: "Tacos", VendorID: vendor.ID},
	}
	require.NoError(t, r.DB.Create(&items).Error)

	detail, err := svc.GetVendor(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, detail.MenuItems, 2)
	assert.Equal(t, "Al Pastor", detail.MenuItems[0].Name)
	assert.Equal(t, "Carnitas", detail.MenuItems[1].Name)
}

func TestVendorService_GetVendor_NotFound(t *testing.T) {
	svc := &VendorService{Repo: newTestRepo(t)}

	_, err := svc.GetVendor(context.Background(), 999)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestVendorService_UpdateStatus(t *testing.T) {
	r := newTestRepo(t)
	svc := &VendorService{Repo: r}
	ctx := context.Background()

	vendor := seedVendor(t, r, "Taco Cart", false, 1)
	before := time.Now().UTC()

	require.NoError(t, svc.UpdateStatus(ctx, vendor.ID, 1, true))

	var updated models.Vendor
	require.NoError(t, r.DB.First(&updated, vendor.ID).Error)
	assert.True(t, updated.IsOpen)
	assert.False(t, updated.LastUpdated.Before(before))
}

func TestVendorService_UpdateStatus_NotOwnerIndistinguishableFromAbsent(t *testing.T) {
	r := newTestRepo(t)
	svc := &VendorService{Repo: r}
	ctx := context.Background()

	vendor := seedVendor(t, r, "Taco Cart", false, 1)

	errNotOwner := svc.UpdateStatus(ctx, vendor.ID, 2, true)
	errAbsent := svc.UpdateStatus(ctx, 999, 2, true)

	require.ErrorIs(t, errNotOwner, repo.ErrNotFound)
	require.ErrorIs(t, errAbsent, repo.ErrNotFound)
	assert.Equal(t, errNotOwner, errAbsent)
}
