package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope is a named budget category holding an allocation and a running
// spent total. The available balance is always derived, never stored, and
// may go negative so that overspend stays visible.
type Envelope struct {
	DefaultModel
	Name       string          `json:"name" gorm:"uniqueIndex:envelope_name" example:"Equipamento"`
	Note       string          `json:"note" example:"Bodies, lenses, lighting"`
	Percentage decimal.Decimal `json:"percentage" gorm:"type:DECIMAL(20,8)" example:"20"` // Share of the overall budget
	Allocated  decimal.Decimal `json:"allocated" gorm:"type:DECIMAL(20,8)" example:"1000"`
	Spent      decimal.Decimal `json:"spent" gorm:"type:DECIMAL(20,8)" example:"600"`
}

var ErrEnvelopeNameNotUnique = errors.New("the envelope name must be unique")

func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	return nil
}

// Available returns the remaining balance of the envelope.
func (e Envelope) Available() decimal.Decimal {
	return e.Allocated.Sub(e.Spent)
}
