package transport

import (
	"time"

	"github.com/ihsanfarabi/StreetEatsHub/internal/models"
)

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	Specialty      string `json:"specialty"`
	WhatsAppNumber string `json:"whatsAppNumber"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token   string         `json:"token"`
	Expires time.Time      `json:"expires"`
	Vendor  VendorResponse `json:"vendor"`
}

type VendorResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Specialty      string    `json:"specialty"`
	WhatsAppNumber string    `json:"whatsAppNumber"`
	IsOpen         bool      `json:"isOpen"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

type VendorDetailResponse struct {
	VendorResponse
	MenuItems []MenuItemResponse `json:"menuItems"`
}

type MenuItemResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
	Category    string  `json:"category"`
}

type UpdateStatusRequest struct {
	IsOpen bool `json:"isOpen"`
}

// CreateMenuItemRequest doubles as the update body: every field is overwritten
// on update. IsAvailable is a pointer so an omitted value defaults to true
// without clobbering an explicit false.
type CreateMenuItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsAvailable *bool   `json:"isAvailable"`
	Category    string  `json:"category"`
}

type ToggleAvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}

type BatchAvailabilityRequest struct {
	MenuItemIDs []uint `json:"menuItemIds"`
	IsAvailable bool   `json:"isAvailable"`
}

type ReplaceMenuRequest struct {
	MenuItems []CreateMenuItemRequest `json:"menuItems"`
}

func VendorFromModel(v *models.Vendor) VendorResponse {
	return VendorResponse{
		ID:             v.ID,
		Name:           v.Name,
		Location:       v.Location,
		Specialty:      v.Specialty,
		WhatsAppNumber: v.WhatsAppNumber,
		IsOpen:         v.IsOpen,
		LastUpdated:    v.LastUpdated,
	}
}

func VendorsFromModels(vendors []models.Vendor) []VendorResponse {
	out := make([]VendorResponse, len(vendors))
	for i := range vendors {
		out[i] = VendorFromModel(&vendors[i])
	}
	return out
}

func VendorDetailFromModel(v *models.Vendor) VendorDetailResponse {
	return VendorDetailResponse{
		VendorResponse: VendorFromModel(v),
		MenuItems:      MenuItemsFromModels(v.MenuItems),
	}
}

func MenuItemFromModel(m *models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		Category:    m.Category,
	}
}

func MenuItemsFromModels(items []models.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, len(items))
	for i := range items {
		out[i] = MenuItemFromModel(&items[i])
	}
	return out
}

// MenuItemFromRequest applies the application-level defaults: available unless
// explicitly disabled, category "General" when blank.
func MenuItemFromRequest(req CreateMenuItemRequest) models.MenuItem {
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	category := req.Category
	if category == "" {
		category = "General"
	}
	return models.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		IsAvailable: available,
		Category:    category,
	}
}
