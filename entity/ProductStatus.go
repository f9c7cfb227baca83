package entity

import (
	"gorm.io/gorm"
)

type ProductStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Products []Product `json:"-"`
}
