package entity

import (
	"gorm.io/gorm"
)

// Design request lifecycle. Stored as plain strings (small fixed set, no
// admin-editable lookup needed).
const (
	DesignRequestNew       = "new"
	DesignRequestQuoted    = "quoted"
	DesignRequestAccepted  = "accepted"
	DesignRequestRejected  = "rejected"
	DesignRequestCancelled = "cancelled"
)

// DesignRequest is a custom-jewelry intake: the customer describes the piece,
// attaches reference images, and the admin answers with a Quote.
type DesignRequest struct {
	gorm.Model
	ReferenceNo  string `gorm:"uniqueIndex" json:"referenceNo"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	Description  string `json:"description"`
	MetalType    string `json:"metalType"`
	StoneType    string `json:"stoneType"`
	BudgetMinUSD int64  `json:"budgetMinUSD"`
	BudgetMaxUSD int64  `json:"budgetMaxUSD"`
	Status       string `gorm:"default:new" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Images []DesignRequestImage `json:"-"`
	Quotes []Quote              `json:"-"`
}
