package entity

import (
	"gorm.io/gorm"
)

// StoneType prices per carat: PriceModifier is INR per carat. Distinct from
// MetalType, which prices by percentage markup.
type StoneType struct {
	gorm.Model
	Name          string  `gorm:"uniqueIndex" json:"name"`
	PriceModifier float64 `json:"priceModifier"`
	Description   string  `json:"description"`
}
