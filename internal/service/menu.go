package service

import (
	"context"
	"fmt"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

type MenuService struct {
	Repo *repo.GormRepo
}

func (s *MenuService) ListMenu(ctx context.Context, vendorID uint) ([]transport.MenuItemResponse, error) {
	items, err := s.Repo.ListMenu(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return transport.MenuItemsFromModels(items), nil
}

// ListAvailableMenu filters the ordered menu in memory, so ordering matches
// ListMenu exactly.
func (s *MenuService) ListAvailableMenu(ctx context.Context, vendorID uint) ([]transport.MenuItemResponse, error) {
	items, err := s.Repo.ListMenu(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	available := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if item.IsAvailable {
			available = append(available, item)
		}
	}
	return transport.MenuItemsFromModels(available), nil
}

func (s *MenuService) ListCategories(ctx context.Context, vendorID uint) ([]string, error) {
	return s.Repo.ListCategories(ctx, vendorID)
}

func (s *MenuService) GetMenuItem(ctx context.Context, vendorID, itemID uint) (*transport.MenuItemResponse, error) {
	item, err := s.Repo.GetMenuItem(ctx, vendorID, itemID)
	if err != nil {
		return nil, err
	}
	resp := transport.MenuItemFromModel(item)
	return &resp, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, vendorID, accountID uint, req transport.CreateMenuItemRequest) (*transport.MenuItemResponse, error) {
	if msgs := validateMenuItem(req); len(msgs) > 0 {
		return nil, validationError(msgs)
	}

	item := transport.MenuItemFromRequest(req)
	if err := s.Repo.CreateMenuItem(ctx, vendorID, accountID, &item); err != nil {
		return nil, err
	}

	resp := transport.MenuItemFromModel(&item)
	return &resp, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, vendorID, accountID, itemID uint, req transport.CreateMenuItemRequest) (*transport.MenuItemResponse, error) {
	if msgs := validateMenuItem(req); len(msgs) > 0 {
		return nil, validationError(msgs)
	}

	item, err := s.Repo.UpdateMenuItem(ctx, vendorID, accountID, itemID, transport.MenuItemFromRequest(req))
	if err != nil {
		return nil, err
	}

	resp := transport.MenuItemFromModel(item)
	return &resp, nil
}

func (s *MenuService) DeleteMenuItem(ctx context.Context, vendorID, accountID, itemID uint) error {
	return s.Repo.DeleteMenuItem(ctx, vendorID, accountID, itemID)
}

func (s *MenuService) ToggleAvailability(ctx context.Context, vendorID, accountID, itemID uint, isAvailable bool) (*transport.MenuItemResponse, error) {
	item, err := s.Repo.ToggleAvailability(ctx, vendorID, accountID, itemID, isAvailable)
	if err != nil {
		return nil, err
	}
	resp := transport.MenuItemFromModel(item)
	return &resp, nil
}

// BatchToggleAvailability returns the number of items actually updated, which
// may be fewer than requested when some ids belong to other vendors.
func (s *MenuService) BatchToggleAvailability(ctx context.Context, vendorID, accountID uint, itemIDs []uint, isAvailable bool) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, repo.ErrNotFound
	}
	return s.Repo.BatchToggleAvailability(ctx, vendorID, accountID, itemIDs, isAvailable)
}

func (s *MenuService) ReplaceMenu(ctx context.Context, vendorID, accountID uint, reqs []transport.CreateMenuItemRequest) ([]transport.MenuItemResponse, error) {
	var msgs []string
	items := make([]models.MenuItem, len(reqs))
	for i, req := range reqs {
		for _, msg := range validateMenuItem(req) {
			msgs = append(msgs, fmt.Sprintf("menuItems[%d]: %s", i, msg))
		}
		items[i] = transport.MenuItemFromRequest(req)
	}
	if len(msgs) > 0 {
		return nil, validationError(msgs)
	}

	created, err := s.Repo.ReplaceMenu(ctx, vendorID, accountID, items)
	if err != nil {
		return nil, err
	}
	return transport.MenuItemsFromModels(created), nil
}
