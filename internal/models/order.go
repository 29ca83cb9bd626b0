package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of a photo-selection order.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderSubmitted OrderStatus = "submitted"
	OrderFulfilled OrderStatus = "fulfilled"
)

// OrderItem is a single product line on an order.
type OrderItem struct {
	Name     string          `json:"name,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity,omitempty"`
}

type OrderItems []OrderItem

// Order is a client photo-selection order created from the shared gallery.
type Order struct {
	DefaultModel
	ContractID *uuid.UUID
	Contract   Contract `json:"-"`
	ClientName string
	Items      OrderItems `gorm:"serializer:json"`
	Status     OrderStatus
	Note       string
}

func (o *Order) BeforeSave(_ *gorm.DB) error {
	o.ClientName = strings.TrimSpace(o.ClientName)
	o.Note = strings.TrimSpace(o.Note)

	if o.Status == "" {
		o.Status = OrderOpen
	}

	return nil
}

// Total sums the order's line items. Missing quantities count as one.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	return total
}
