package models

import (
	"errors"
	"strings"
	"time"

	"github.com/atelier-luz/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvestmentInstallment is a single due payment of a studio investment.
// It is treated purely as an expense event bucketed by its due date.
type InvestmentInstallment struct {
	DefaultModel
	Note    string
	DueDate string          // Calendar-date string
	Amount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var ErrInstallmentAmountNotPositive = errors.New("installment amounts must be larger than zero")

func (i *InvestmentInstallment) BeforeSave(_ *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)
	i.DueDate = strings.TrimSpace(i.DueDate)

	if !i.Amount.IsPositive() {
		return ErrInstallmentAmountNotPositive
	}

	return nil
}

// Due parses the due date. ok is false for unparsable dates, which excludes
// the installment from period-filtered aggregates.
func (i InvestmentInstallment) Due() (time.Time, bool) {
	t, err := types.ParseDay(i.DueDate)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
