package entity

import (
	"gorm.io/gorm"
)

// Product is a catalog piece. BasePrice is the admin-entered price in INR;
// CalculatedPriceUSD is the precomputed storefront price the estimator
// derives deltas from.
type Product struct {
	gorm.Model
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	ShortDescription   string  `json:"shortDescription"`
	Tags               string  `json:"tags"` // comma separated
	BasePrice          float64 `json:"basePrice"`
	CalculatedPriceUSD float64 `json:"calculatedPriceUSD"`

	// Original composition. Type names match the metal/stone catalogs
	// case-insensitively; weights are grams for metal, carats for stones.
	MetalType            string  `json:"metalType"`
	MetalWeight          float64 `json:"metalWeight"`
	MainStoneType        string  `json:"mainStoneType"`
	MainStoneWeight      float64 `json:"mainStoneWeight"`
	SecondaryStoneType   string  `json:"secondaryStoneType"`
	SecondaryStoneWeight float64 `json:"secondaryStoneWeight"`
	OtherStoneType       string  `json:"otherStoneType"`
	OtherStoneWeight     float64 `json:"otherStoneWeight"`

	// --- BLOB image ---
	Image     []byte `gorm:"type:blob" json:"-"`
	ImageType string `json:"-"`
	ImageSize int64  `json:"-"`

	ProductCategoryID uint            `json:"productCategoryId"`
	ProductCategory   ProductCategory `json:"-"`

	ProductStatusID uint          `json:"productStatusId"`
	ProductStatus   ProductStatus `json:"-"`

	OrderItems            []OrderItem            `json:"-"`
	CustomizationRequests []CustomizationRequest `json:"-"`
}
