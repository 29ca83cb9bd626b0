package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is an item of the studio store catalogue, e.g. a frame or an
// album. Contract store items reference products loosely by ID.
type Product struct {
	DefaultModel
	Name     string
	Note     string
	Category string
	Price    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Archived bool
}

func (p *Product) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)
	p.Category = strings.TrimSpace(p.Category)

	return nil
}
