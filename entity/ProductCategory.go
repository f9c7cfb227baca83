package entity

import (
	"gorm.io/gorm"
)

type ProductCategory struct {
	gorm.Model
	CategoryName string `json:"categoryName"`

	Products []Product `json:"-"`
}
