package entity

import (
	"gorm.io/gorm"
)

// OrderItem is either a catalog line (ProductID set) or a bespoke line backed
// by an accepted quote (QuoteID set). Description snapshots the piece at order
// time so later catalog edits do not rewrite history.
type OrderItem struct {
	gorm.Model
	Description  string `json:"description"`
	Qty          int    `json:"qty"`
	UnitPriceUSD int64  `json:"unitPriceUSD"`
	TotalUSD     int64  `json:"totalUSD"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ProductID *uint    `json:"productId,omitempty"`
	Product   *Product `json:"-"`

	QuoteID *uint  `json:"quoteId,omitempty"`
	Quote   *Quote `json:"-"`
}
