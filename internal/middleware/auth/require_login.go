package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ihsanfarabi/StreetEatsHub/internal/tokens"
)

const claimsKey = "claims"

// RequireLogin verifies the bearer token and puts the typed claims on the
// echo context. Missing, malformed and expired tokens all yield 401.
func RequireLogin(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := tokens.AccessClaimsFromToken(tokenStr, secret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

func ClaimsFromContext(c echo.Context) (*tokens.AccessClaims, bool) {
	claims, ok := c.Get(claimsKey).(*tokens.AccessClaims)
	return claims, ok
}
