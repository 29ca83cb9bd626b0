package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType tells whether a budget transaction adds or removes money.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is one entry of the append-only budget transaction log.
// Expenses reference the envelope they draw down.
type Transaction struct {
	DefaultModel
	Date        time.Time
	Description string
	Category    string
	Type        TransactionType
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	EnvelopeID   *uuid.UUID
	Envelope     Envelope `json:"-"`
	EnvelopeName string   // Denormalized for display, kept when the envelope is deleted
}

var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be income or expense")
)

// BeforeSave sets the timezone for the date to UTC and validates the entry.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	t.Description = strings.TrimSpace(t.Description)
	t.Category = strings.TrimSpace(t.Category)
	t.EnvelopeName = strings.TrimSpace(t.EnvelopeName)

	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(_ *gorm.DB) (err error) {
	t.Date = t.Date.In(time.UTC)
	return nil
}
