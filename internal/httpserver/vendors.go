package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/ihsanfarabi/StreetEatsHub/internal/events"
	"github.com/ihsanfarabi/StreetEatsHub/internal/logging"
	"github.com/ihsanfarabi/StreetEatsHub/internal/middleware/auth"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/service"
	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

type VendorHTTP struct {
	Svc      *service.VendorService
	Producer *events.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return uint(id), nil
}

func (h *VendorHTTP) ListVendors(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.list")

	vendors, err := h.Svc.ListVendors(ctx)
	if err != nil {
		l.Error("list_vendors_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list vendors")
	}

	return c.JSON(http.StatusOK, vendors)
}

func (h *VendorHTTP) ListOpenVendors(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.list_open")

	vendors, err := h.Svc.ListOpenVendors(ctx)
	if err != nil {
		l.Error("list_open_vendors_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list vendors")
	}

	return c.JSON(http.StatusOK, vendors)
}

func (h *VendorHTTP) GetVendor(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.get")

	id, err := parseID(c, "vendorId")
	if err != nil {
		return err
	}

	vendor, err := h.Svc.GetVendor(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("get_vendor_failed", "status", 404, "vendor_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Vendor not found")
		}
		l.Error("get_vendor_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot get vendor")
	}

	return c.JSON(http.StatusOK, vendor)
}

func (h *VendorHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "vendors.update_status")

	id, err := parseID(c, "vendorId")
	if err != nil {
		return err
	}

	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing claims")
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := h.Svc.UpdateStatus(ctx, id, claims.AccountID, req.IsOpen); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Not-owner and not-exists share one answer.
			l.Warn("update_status_failed", "status", 404, "vendor_id", id)
			return echo.NewHTTPError(http.StatusNotFound, "Vendor not found or access denied")
		}
		l.Error("update_status_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot update status")
	}

	publish(c, h.Producer, events.TopicVendorEvents, fmt.Sprint(id), map[string]any{
		"type":     "vendor_status_changed",
		"vendorID": id,
		"isOpen":   req.IsOpen,
	})
	if vendor, err := h.Svc.GetVendor(ctx, id); err == nil {
		indexVendor(c, h.ES, h.ESIndex, vendor.VendorResponse)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Status updated successfully",
		"isOpen":  req.IsOpen,
	})
}
