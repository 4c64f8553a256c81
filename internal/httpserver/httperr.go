package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ihsanfarabi/StreetEatsHub/internal/service"
)

// validationHTTPError renders every violated constraint, not just the first.
func validationHTTPError(verr *service.ValidationError) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
		"message": "Validation failed",
		"errors":  verr.Messages,
	})
}

func asValidation(err error) (*service.ValidationError, bool) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
