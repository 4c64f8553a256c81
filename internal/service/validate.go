package service

import (
	"fmt"
	"net/mail"
	"regexp"

	"github.com/ihsanfarabi/StreetEatsHub/internal/transport"
)

const (
	maxNameLen      = 100
	maxLocationLen  = 200
	maxSpecialtyLen = 100
	maxPhoneLen     = 20
	maxCategoryLen  = 50
	minPasswordLen  = 6
	minPrice        = 0.01
	maxPrice        = 999999.99
)

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{5,}$`)

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func validateRegister(req transport.RegisterRequest) []string {
	var msgs []string
	if !validEmail(req.Email) {
		msgs = append(msgs, "email must be a valid email address")
	}
	if len(req.Password) < minPasswordLen {
		msgs = append(msgs, fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	if req.Name == "" || len(req.Name) > maxNameLen {
		msgs = append(msgs, fmt.Sprintf("name is required and must be at most %d characters", maxNameLen))
	}
	if req.Location == "" || len(req.Location) > maxLocationLen {
		msgs = append(msgs, fmt.Sprintf("location is required and must be at most %d characters", maxLocationLen))
	}
	if len(req.Specialty) > maxSpecialtyLen {
		msgs = append(msgs, fmt.Sprintf("specialty must be at most %d characters", maxSpecialtyLen))
	}
	if req.WhatsAppNumber == "" || len(req.WhatsAppNumber) > maxPhoneLen || !phoneRe.MatchString(req.WhatsAppNumber) {
		msgs = append(msgs, fmt.Sprintf("whatsAppNumber must be a phone number of at most %d characters", maxPhoneLen))
	}
	return msgs
}

func validateMenuItem(req transport.CreateMenuItemRequest) []string {
	var msgs []string
	if req.Name == "" || len(req.Name) > maxNameLen {
		msgs = append(msgs, fmt.Sprintf("name is required and must be at most %d characters", maxNameLen))
	}
	if req.Price < minPrice || req.Price > maxPrice {
		msgs = append(msgs, fmt.Sprintf("price must be between %.2f and %.2f", minPrice, maxPrice))
	}
	if len(req.Category) > maxCategoryLen {
		msgs = append(msgs, fmt.Sprintf("category must be at most %d characters", maxCategoryLen))
	}
	return msgs
}
