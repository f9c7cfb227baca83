package entity

import (
	"gorm.io/gorm"
)

type InspirationImage struct {
	gorm.Model
	Title    string `json:"title"`
	Category string `json:"category"`

	// --- BLOB image ---
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`

	UploadedByID uint `json:"uploadedById"`
	UploadedBy   User `json:"-"`
}
