package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/ihsanfarabi/StreetEatsHub/internal/events"
	"github.com/ihsanfarabi/StreetEatsHub/internal/logging"
	"github.com/ihsanfarabi/StreetEatsHub/internal/middleware/auth"
	"github.com/ihsanfarabi/StreetEatsHub/internal/repo"
	"github.com/ihsanfarabi/StreetEatsHub/internal/service"
	"github.com/ihsanfarabi/StreetEatsHub/internal/service/search"
	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer *events.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event publish failed", "topic", topic, "error", err)
	}
}

func indexVendor(c echo.Context, es *elasticsearch.Client, index string, vendor transport.VendorResponse) {
	if es == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexVendor(ctx, es, index, vendor); err != nil {
		logging.FromContext(c.Request().Context()).Error("vendor index failed", "vendor_id", vendor.ID, "error", err)
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.Register(ctx, req)
	if err != nil {
		if verr, ok := asValidation(err); ok {
			l.Warn("register_failed", "status", 400, "reason", "validation", "error", err)
			return validationHTTPError(verr)
		}
		if errors.Is(err, repo.ErrEmailTaken) {
			l.Warn("register_failed", "status", 400, "reason", "email taken")
			return echo.NewHTTPError(http.StatusBadRequest, "Registration failed. Email may already be in use.")
		}
		l.Error("register_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot register vendor")
	}

	publish(c, h.Producer, events.TopicVendorEvents, fmt.Sprint(resp.Vendor.ID), map[string]any{
		"type":     "vendor_registered",
		"vendorID": resp.Vendor.ID,
		"name":     resp.Vendor.Name,
	})
	indexVendor(c, h.ES, h.ESIndex, resp.Vendor)

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Svc.Login(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			l.Warn("login_failed", "status", 401)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password.")
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot login")
	}

	return c.JSON(http.StatusOK, resp)
}

// Me echoes the verified token claims.
func (h *AuthHTTP) Me(c echo.Context) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing claims")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"accountId": claims.AccountID,
		"email":     claims.Email,
		"vendorId":  claims.VendorID,
	})
}
