package entity

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	AmountUSD int64      `json:"amountUSD"`
	Kind      string     `json:"kind"` // "Advance" or "Balance"
	PaidAt    *time.Time `json:"paidAt,omitempty"`

	// PayPal Orders v2 identifiers
	PayPalOrderID   string `json:"paypalOrderId"`
	PayPalCaptureID string `json:"paypalCaptureId"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	PaymentStatusID uint          `json:"paymentStatusId"`
	PaymentStatus   PaymentStatus `json:"-"`
}
