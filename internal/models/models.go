package models

import (
	"time"
)

type Account struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"unique;not null"          json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Vendor struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string     `gorm:"size:100;not null"        json:"name"`
	Location       string     `gorm:"size:200;not null"        json:"location"`
	Specialty      string     `gorm:"size:100"                 json:"specialty"`
	WhatsAppNumber string     `gorm:"size:20;not null"         json:"whatsAppNumber"`
	IsOpen         bool       `gorm:"not null;default:false"   json:"isOpen"`
	LastUpdated    time.Time  `gorm:"not null"                 json:"lastUpdated"`
	CreatedAt      time.Time  `json:"createdAt"`
	AccountID      uint       `gorm:"uniqueIndex;not null"     json:"-"`
	MenuItems      []MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"menuItems,omitempty"`
}

type MenuItem struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null"        json:"name"`
	Price       float64   `gorm:"not null"                 json:"price"`
	IsAvailable bool      `gorm:"not null"                 json:"isAvailable"`
	Category    string    `gorm:"size:50;not null"         json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	VendorID    uint      `gorm:"index;not null"           json:"vendorId"`
}
