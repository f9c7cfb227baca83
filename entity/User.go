package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Country     string `json:"country"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Relations, preloaded only where an endpoint needs them
	Orders                []Order                `json:"-"`
	DesignRequests        []DesignRequest        `json:"-"`
	CustomizationRequests []CustomizationRequest `json:"-"`
	InspirationImages     []InspirationImage     `gorm:"foreignKey:UploadedByID" json:"-"`
}
