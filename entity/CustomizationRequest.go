package entity

import (
	"gorm.io/gorm"
)

const (
	CustomizationPending   = "pending"
	CustomizationReviewed  = "reviewed"
	CustomizationCancelled = "cancelled"
)

// CustomizationRequest persists a customer's metal/stone substitution on a
// catalog product, together with the price estimate (and any data-quality
// warnings) computed at submission time.
type CustomizationRequest struct {
	gorm.Model
	ReferenceNo string `gorm:"uniqueIndex" json:"referenceNo"`

	MetalTypeID          *uint `json:"metalTypeId,omitempty"`
	MainStoneTypeID      *uint `json:"mainStoneTypeId,omitempty"`
	SecondaryStoneTypeID *uint `json:"secondaryStoneTypeId,omitempty"`
	OtherStoneTypeID     *uint `json:"otherStoneTypeId,omitempty"`

	EstimatedPriceUSD int64  `json:"estimatedPriceUSD"`
	EstimateWarnings  string `json:"estimateWarnings"` // newline separated
	Remarks           string `json:"remarks"`
	Status            string `gorm:"default:pending" json:"status"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
