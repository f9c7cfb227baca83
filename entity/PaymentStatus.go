package entity

import (
	"gorm.io/gorm"
)

type PaymentStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Payments []Payment `json:"-"`
}
