package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihsanfarabi/StreetEatsHub/internal/events"
	"github.com/ihsanfarabi/StreetEatsHub/internal/logging"
	"github.com/ihsanfarabi/StreetEatsHub/internal/middleware/auth"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/service"
	"github.com/ihsanfarabi/StreetEatsHub/internal/tokens"
	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

type MenuHTTP struct {
	Svc      *service.MenuService
	Producer *events.Producer
}

func (h *MenuHTTP) ListMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list")

	vendorID, err := parseID(c, "vendorId")
	if err != nil {
		return err
	}

	items, err := h.Svc.ListMenu(ctx, vendorID)
	if err != nil {
		l.Error("list_menu_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list menu")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MenuHTTP) ListAvailableMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list_available")

	vendorID, err := parseID(c, "vendorId")
	if err != nil {
		return err
	}

	items, err := h.Svc.ListAvailableMenu(ctx, vendorID)
	if err != nil {
		l.Error("list_available_menu_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list menu")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *MenuHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.categories")

	vendorID, err := parseID(c, "vendorId")
	if err != nil {
		return err
	}

	categories, err := h.Svc.ListCategories(ctx, vendorID)
	if err != nil {
		l.Error("list_categories_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list categories")
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *MenuHTTP) GetMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.get_item")

	vendorID, err := parseID(c, "vendorId")
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "menuItemId")
	if err != nil {
		return err
	}

	item, err := h.Svc.GetMenuItem(ctx, vendorID, itemID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("get_menu_item_failed", "status", 404, "vendor_id", vendorID, "item_id", itemID)
			return echo.NewHTTPError(http.StatusNotFound, "Menu item not found")
		}
		l.Error("get_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get menu item")
	}

	return c.JSON(http.StatusOK, item)
}

// menuWriteContext pulls the path vendor id and claims shared by every
// authenticated menu mutation.
func menuWriteContext(c echo.Context) (uint, *tokens.AccessClaims, error) {
	vendorID, err := parseID(c, "vendorId")
	if err != nil {
		return 0, nil, err
	}
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return 0, nil, echo.NewHTTPError(http.StatusUnauthorized, "missing claims")
	}
	return vendorID, claims, nil
}

func (h *MenuHTTP) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create_item")

	vendorID, claims, err := menuWriteContext(c)
	if err != nil {
		return err
	}

	var req transport.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_menu_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.CreateMenuItem(ctx, vendorID, claims.AccountID, req)
	if err != nil {
		if verr, ok := asValidation(err); ok {
			l.Warn("create_menu_item_failed", "status", 400, "reason", "validation", "error", err)
			return validationHTTPError(verr)
		}
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("create_menu_item_failed", "status", 404, "vendor_id", vendorID)
			return echo.NewHTTPError(http.StatusNotFound, "Vendor not found or access denied")
		}
		l.Error("create_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot create menu item")
	}

	publish(c, h.Producer, events.TopicMenuEvents, fmt.Sprint(vendorID), map[string]any{
		"type":     "menu_item_created",
		"vendorID": vendorID,
		"itemID":   item.ID,
		"name":     item.Name,
	})

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/vendors/%d/menu/%d", vendorID, item.ID))
	return c.JSON(http.StatusCreated, item)
}

func (h *MenuHTTP) UpdateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.update_item")

	vendorID, claims, err := menuWriteContext(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "menuItemId")
	if err != nil {
		return err
	}

	var req transport.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_menu_item_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.UpdateMenuItem(ctx, vendorID, claims.AccountID, itemID, req)
	if err != nil {
		if verr, ok := asValidation(err); ok {
			l.Warn("update_menu_item_failed", "status", 400, "reason", "validation", "error", err)
			return validationHTTPError(verr)
		}
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("update_menu_item_failed", "status", 404, "vendor_id", vendorID, "item_id", itemID)
			return echo.NewHTTPError(http.StatusNotFound, "Menu item not found or access denied")
		}
		l.Error("update_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update menu item")
	}

	publish(c, h.Producer, events.TopicMenuEvents, fmt.Sprint(vendorID), map[string]any{
		"type":     "menu_item_updated",
		"vendorID": vendorID,
		"itemID":   item.ID,
		"name":     item.Name,
	})

	return c.JSON(http.StatusOK, item)
}

func (h *MenuHTTP) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.delete_item")

	vendorID, claims, err := menuWriteContext(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "menuItemId")
	if err != nil {
		return err
	}

	if err := h.Svc.DeleteMenuItem(ctx, vendorID, claims.AccountID, itemID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("delete_menu_item_failed", "status", 404, "vendor_id", vendorID, "item_id", itemID)
			return echo.NewHTTPError(http.StatusNotFound, "Menu item not found or access denied")
		}
		l.Error("delete_menu_item_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot delete menu item")
	}

	publish(c, h.Producer, events.TopicMenuEvents, fmt.Sprint(vendorID), map[string]any{
		"type":     "menu_item_deleted",
		"vendorID": vendorID,
		"itemID":   itemID,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *MenuHTTP) ToggleAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.toggle_availability")

	vendorID, claims, err := menuWriteContext(c)
	if err != nil {
		return err
	}
	itemID, err := parseID(c, "menuItemId")
	if err != nil {
		return err
	}

	var req transport.ToggleAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("toggle_availability_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	item, err := h.Svc.ToggleAvailability(ctx, vendorID, claims.AccountID, itemID, req.IsAvailable)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("toggle_availability_failed", "status", 404, "vendor_id", vendorID, "item_id", itemID)
			return echo.NewHTTPError(http.StatusNotFound, "Menu item not found or access denied")
		}
		l.Error("toggle_availability_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot toggle availability")
	}

	publish(c, h.Producer, events.TopicMenuEvents, fmt.Sprint(vendorID), map[string]any{
		"type":        "menu_item_availability_changed",
		"vendorID":    vendorID,
		"itemID":      item.ID,
		"isAvailable": item.IsAvailable,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":     "Availability updated successfully",
		"isAvailable": item.IsAvailable,
	})
}

func (h *MenuHTTP) BatchToggleAvailability(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.batch_toggle_availability")

	vendorID, claims, err := menuWriteContext(c)
	if err != nil {
		return err
	}

	var req transport.BatchAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("batch_toggle_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	updated, err := h.Svc.BatchToggleAvailability(ctx, vendorID, claims.AccountID, req.MenuItemIDs, req.IsAvailable)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("batch_toggle_failed", "status", 404, "vendor_id", vendorID)
			return echo.NewHTTPError(http.StatusNotFound, "Vendor not found or access denied")
		}
		l.Error("batch_toggle_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update availability")
	}

	publish(c, h.Producer, events.TopicMenuEvents, fmt.Sprint(vendorID), map[string]any{
		"type":        "menu_availability_batch_changed",
		"vendorID":    vendorID,
		"updated":     updated,
		"isAvailable": req.IsAvailable,
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":           "Batch availability update successful",
		"updatedItemsCount": updated,
		"isAvailable":       req.IsAvailable,
	})
}

func (h *MenuHTTP) ReplaceMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.replace")

	vendorID, claims, err := menuWriteContext(c)
	if err != nil {
		return err
	}

	var req transport.ReplaceMenuRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("replace_menu_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	items, err := h.Svc.ReplaceMenu(ctx, vendorID, claims.AccountID, req.MenuItems)
	if err != nil {
		if verr, ok := asValidation(err); ok {
			l.Warn("replace_menu_failed", "status", 400, "reason", "validation", "error", err)
			return validationHTTPError(verr)
		}
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("replace_menu_failed", "status", 404, "vendor_id", vendorID)
			return echo.NewHTTPError(http.StatusNotFound, "Vendor not found or access denied")
		}
		l.Error("replace_menu_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot replace menu")
	}

	publish(c, h.Producer, events.TopicMenuEvents, fmt.Sprint(vendorID), map[string]any{
		"type":      "menu_replaced",
		"vendorID":  vendorID,
		"itemCount": len(items),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"message":   "Menu replaced successfully",
		"menuItems": items,
	})
}
