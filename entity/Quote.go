package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuoteOffered  = "offered"
	QuoteAccepted = "accepted"
	QuoteDeclined = "declined"
	QuoteExpired  = "expired"
)

// Quote is the admin's priced answer to a DesignRequest. An accepted quote can
// back an order line.
type Quote struct {
	gorm.Model
	AmountUSD  int64     `json:"amountUSD"`
	ValidUntil time.Time `json:"validUntil"`
	Notes      string    `json:"notes"`
	Status     string    `gorm:"default:offered" json:"status"`

	DesignRequestID uint          `json:"designRequestId"`
	DesignRequest   DesignRequest `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
