package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

const (
	ownerAccount    = uint(1)
	intruderAccount = uint(2)
)

func newMenuFixture(t *testing.T) (*MenuService, *repo.GormRepo, *models.Vendor) {
	t.Helper()
	r := newTestRepo(t)
	vendor := seedVendor(t, r, "Taco Cart", true, ownerAccount)
	return &MenuService{Repo: r}, r, vendor
}

func itemRequest(name string, price float64, category string) transport.CreateMenuItemRequest {
	return transport.CreateMenuItemRequest{Name: name, Price: price, Category: category}
}

func vendorLastUpdated(t *testing.T, r *repo.GormRepo, vendorID uint) time.Time {
	t.Helper()
	var vendor models.Vendor
	require.NoError(t, r.DB.First(&vendor, vendorID).Error)
	return vendor.LastUpdated
}

func TestMenuService_CreateMenuItem(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()
	before := time.Now().UTC()

	item, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Carnitas", 8.5, ""))
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Carnitas", item.Name)
	assert.True(t, item.IsAvailable)
	assert.Equal(t, "General", item.Category)

	assert.False(t, vendorLastUpdated(t, r, vendor.ID).Before(before))
}

func TestMenuService_CreateMenuItem_ExplicitUnavailable(t *testing.T) {
	svc, _, vendor := newMenuFixture(t)

	unavailable := false
	req := itemRequest("Seasonal Special", 12, "Specials")
	req.IsAvailable = &unavailable

	item, err := svc.CreateMenuItem(context.Background(), vendor.ID, ownerAccount, req)
	require.NoError(t, err)
	assert.False(t, item.IsAvailable)
}

func TestMenuService_CreateMenuItem_NotOwner(t *testing.T) {
	svc, _, vendor := newMenuFixture(t)

	_, err := svc.CreateMenuItem(context.Background(), vendor.ID, intruderAccount, itemRequest("Carnitas", 8.5, ""))
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMenuService_CreateMenuItem_Validation(t *testing.T) {
	svc, _, vendor := newMenuFixture(t)

	_, err := svc.CreateMenuItem(context.Background(), vendor.ID, ownerAccount, itemRequest("", 0, ""))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 2)
}

func TestMenuService_ListMenu_Ordering(t *testing.T) {
	svc, _, vendor := newMenuFixture(t)
	ctx := context.Background()

	for _, req := range []transport.CreateMenuItemRequest{
		itemRequest("Horchata", 3, "Drinks"),
		itemRequest("Carnitas", 8.5, "Tacos"),
		itemRequest("Agua Fresca", 2.5, "Drinks"),
		itemRequest("Al Pastor", 9, "Tacos"),
	} {
		_, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, req)
		require.NoError(t, err)
	}

	items, err := svc.ListMenu(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, items, 4)

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	assert.Equal(t, []string{"Agua Fresca", "Horchata", "Al Pastor", "Carnitas"}, names)
}

func TestMenuService_ListAvailableMenu_PreservesOrdering(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()

	items := []models.MenuItem{
		{Name: "Horchata", Price: 3, IsAvailable: true, Category: "Drinks", VendorID: vendor.ID},
		{Name: "Carnitas", Price: 8.5, IsAvailable: false, Category: "Tacos", VendorID: vendor.ID},
		{Name: "Al Pastor", Price: 9, IsAvailable: true, Category: "Tacos", VendorID: vendor.ID},
	}
	require.NoError(t, r.DB.Create(&items).Error)

	available, err := svc.ListAvailableMenu(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "Horchata", available[0].Name)
	assert.Equal(t, "Al Pastor", available[1].Name)
}

func TestMenuService_ListCategories(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)

	items := []models.MenuItem{
		{Name: "Carnitas", Price: 8.5, IsAvailable: true, Category: "Tacos", VendorID: vendor.ID},
		{Name: "Al Pastor", Price: 9, IsAvailable: true, Category: "Tacos", VendorID: vendor.ID},
		{Name: "Horchata", Price: 3, IsAvailable: true, Category: "Drinks", VendorID: vendor.ID},
	}
	require.NoError(t, r.DB.Create(&items).Error)

	categories, err := svc.ListCategories(context.Background(), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drinks", "Tacos"}, categories)
}

func TestMenuService_GetMenuItem_WrongVendor(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()

	other := seedVendor(t, r, "Other Cart", true, intruderAccount)
	item, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Carnitas", 8.5, ""))
	require.NoError(t, err)

	_, err = svc.GetMenuItem(ctx, other.ID, item.ID)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMenuService_UpdateMenuItem(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()

	created, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Carnitas", 8.5, "Tacos"))
	require.NoError(t, err)

	before := time.Now().UTC()
	updated, err := svc.UpdateMenuItem(ctx, vendor.ID, ownerAccount, created.ID, itemRequest("Carnitas Supreme", 10, "Tacos"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Carnitas Supreme", updated.Name)
	assert.Equal(t, 10.0, updated.Price)

	var stored models.MenuItem
	require.NoError(t, r.DB.First(&stored, created.ID).Error)
	assert.False(t, stored.UpdatedAt.Before(before))
	assert.False(t, vendorLastUpdated(t, r, vendor.ID).Before(before))
}

func TestMenuService_DeleteMenuItem(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()

	created, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Carnitas", 8.5, ""))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMenuItem(ctx, vendor.ID, ownerAccount, created.ID))

	var count int64
	require.NoError(t, r.DB.Model(&models.MenuItem{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Zero(t, count)

	require.ErrorIs(t, svc.DeleteMenuItem(ctx, vendor.ID, ownerAccount, created.ID), repo.ErrNotFound)
}

func TestMenuService_ToggleAvailability(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()

	created, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Carnitas", 8.5, ""))
	require.NoError(t, err)
	require.True(t, created.IsAvailable)

	before := time.Now().UTC()
	toggled, err := svc.ToggleAvailability(ctx, vendor.ID, ownerAccount, created.ID, false)
	require.NoError(t, err)
	assert.False(t, toggled.IsAvailable)
	assert.False(t, vendorLastUpdated(t, r, vendor.ID).Before(before))
}

func TestMenuService_BatchToggleAvailability_MixedIDs(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()

	other := seedVendor(t, r, "Other Cart", true, intruderAccount)
	mine1, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Carnitas", 8.5, ""))
	require.NoError(t, err)
	mine2, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Al Pastor", 9, ""))
	require.NoError(t, err)
	theirs, err := svc.CreateMenuItem(ctx, other.ID, intruderAccount, itemRequest("Burger", 7, ""))
	require.NoError(t, err)

	before := time.Now().UTC()
	updated, err := svc.BatchToggleAvailability(ctx, vendor.ID, ownerAccount,
		[]uint{mine1.ID, mine2.ID, theirs.ID, 9999}, false)
	require.NoError(t, err)
	assert.EqualValues(t, 2, updated)

	var stored models.MenuItem
	require.NoError(t, r.DB.First(&stored, mine1.ID).Error)
	assert.False(t, stored.IsAvailable)

	// The foreign item is untouched.
	var foreign models.MenuItem
	require.NoError(t, r.DB.First(&foreign, theirs.ID).Error)
	assert.True(t, foreign.IsAvailable)

	assert.False(t, vendorLastUpdated(t, r, vendor.ID).Before(before))
}

func TestMenuService_BatchToggleAvailability_NoMatches(t *testing.T) {
	svc, r, vendor := newMenuFixture(t)
	ctx := context.Background()

	other := seedVendor(t, r, "Other Cart", true, intruderAccount)
	theirs, err := svc.CreateMenuItem(ctx, other.ID, intruderAccount, itemRequest("Burger", 7, ""))
	require.NoError(t, err)

	_, err = svc.BatchToggleAvailability(ctx, vendor.ID, ownerAccount, []uint{theirs.ID, 9999}, false)
	require.ErrorIs(t, err, repo.ErrNotFound)

	_, err = svc.BatchToggleAvailability(ctx, vendor.ID, ownerAccount, nil, false)
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestMenuService_ReplaceMenu(t *testing.T) {
	svc, _, vendor := newMenuFixture(t)
	ctx := context.Background()

	old, err := svc.CreateMenuItem(ctx, vendor.ID, ownerAccount, itemRequest("Old Dish", 5, "Legacy"))
	require.NoError(t, err)

	replaced, err := svc.ReplaceMenu(ctx, vendor.ID, ownerAccount, []transport.CreateMenuItemRequest{
		itemRequest("Horchata", 3, "Drinks"),
		itemRequest("Carnitas", 8.5, "Tacos"),
	})
	require.NoError(t, err)
	require.Len(t, replaced, 2)
	for _, item := range replaced {
		assert.NotEqual(t, old.ID, item.ID)
	}

	menu, err := svc.ListMenu(ctx, vendor.ID)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, "Horchata", menu[0].Name)
	assert.Equal(t, "Carnitas", menu[1].Name)
}

func TestMenuService_ReplaceMenu_ValidatesEveryItem(t *testing.T) {
	svc, _, vendor := newMenuFixture(t)

	_, err := svc.ReplaceMenu(context.Background(), vendor.ID, ownerAccount, []transport.CreateMenuItemRequest{
		itemRequest("Fine", 3, ""),
		itemRequest("", 0, ""),
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Messages, 2)
}

func TestMenuService_ReplaceMenu_NotOwner(t *testing.T) {
	svc, _, vendor := newMenuFixture(t)

	_, err := svc.ReplaceMenu(context.Background(), vendor.ID, intruderAccount, []transport.CreateMenuItemRequest{
		itemRequest("Horchata", 3, "Drinks"),
	})
	require.ErrorIs(t, err, repo.ErrNotFound)
}
