package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/ihsanfarabi/StreetEatsHub/internal/middleware/auth"
)

type Deps struct {
	AuthHandler   *AuthHTTP
	VendorHandler *VendorHTTP
	MenuHandler   *MenuHTTP
	SearchHandler *SearchHTTP

	JWTSecret []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	api := e.Group("/api")
	requireLogin := auth.RequireLogin(d.JWTSecret)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", d.AuthHandler.Register)
	authGroup.POST("/login", d.AuthHandler.Login)
	authGroup.GET("/me", d.AuthHandler.Me, requireLogin)

	vendors := api.Group("/vendors")
	vendors.GET("", d.VendorHandler.ListVendors)
	vendors.GET("/open", d.VendorHandler.ListOpenVendors)
	if d.SearchHandler != nil {
		vendors.GET("/search", d.SearchHandler.SearchVendors)
	}
	vendors.GET("/:vendorId", d.VendorHandler.GetVendor)
	vendors.PUT("/:vendorId/status", d.VendorHandler.UpdateStatus, requireLogin)

	menu := api.Group("/vendors/:vendorId/menu")
	menu.GET("", d.MenuHandler.ListMenu)
	menu.GET("/available", d.MenuHandler.ListAvailableMenu)
	menu.GET("/categories", d.MenuHandler.ListCategories)
	menu.GET("/:menuItemId", d.MenuHandler.GetMenuItem)

	menu.POST("", d.MenuHandler.CreateMenuItem, requireLogin)
	menu.PUT("", d.MenuHandler.ReplaceMenu, requireLogin)
	menu.PUT("/:menuItemId", d.MenuHandler.UpdateMenuItem, requireLogin)
	menu.DELETE("/:menuItemId", d.MenuHandler.DeleteMenuItem, requireLogin)
	menu.PATCH("/:menuItemId/availability", d.MenuHandler.ToggleAvailability, requireLogin)
	menu.PATCH("/batch/availability", d.MenuHandler.BatchToggleAvailability, requireLogin)
}
