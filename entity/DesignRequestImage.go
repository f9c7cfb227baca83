package entity

import (
	"gorm.io/gorm"
)

type DesignRequestImage struct {
	gorm.Model

	// --- BLOB image ---
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`

	DesignRequestID uint          `json:"designRequestId"`
	DesignRequest   DesignRequest `json:"-"`
}
