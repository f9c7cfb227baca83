package entity

import (
	"gorm.io/gorm"
)

// MetalType prices by percentage markup: PriceModifier 18 means +18% over
// the baseline metal. Distinct from StoneType, which prices per carat.
type MetalType struct {
	gorm.Model
	Name          string  `gorm:"uniqueIndex" json:"name"`
	PriceModifier float64 `json:"priceModifier"`
	Description   string  `json:"description"`
}
