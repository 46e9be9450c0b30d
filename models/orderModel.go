package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order keeps the checked-out items as an opaque JSON array: clients send
// whatever item shape their storefront uses and it is stored verbatim.
type Order struct {
	gorm.Model
	Items             datatypes.JSON `json:"items" binding:"required"`
	TotalAmount       float64        `json:"totalAmount" binding:"required"`
	OrderDate         time.Time      `json:"orderDate"`
	CheckoutSessionID string         `json:"checkoutSessionId,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	return nil
}
