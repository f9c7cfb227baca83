package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	ReferenceNo string  `gorm:"uniqueIndex" json:"referenceNo"`
	SubtotalUSD int64   `json:"subtotalUSD"`
	TotalUSD    int64   `json:"totalUSD"`
	// 50% upfront policy: production starts only after the advance clears.
	AdvanceDueUSD   int64  `json:"advanceDueUSD"`
	ShippingAddress string `json:"shippingAddress"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// preload only on detail
	OrderItems []OrderItem `json:"-"`
	Payments   []Payment   `json:"-"`
}
