// Package ledger executes the budget envelope commands. The expense
// commands pair a transaction write with an envelope update; both always
// run inside a single database transaction so a partial failure rolls the
// whole command back instead of leaving the ledger inconsistent.
package ledger

import (
	"errors"
	"time"

	"github.com/atelier-luz/backend/internal/events"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrEnvelopeRequired = errors.New("an envelope must be selected for expenses")

// AddIncome appends an income entry to the transaction log.
func AddIncome(db *gorm.DB, description string, date time.Time, amount decimal.Decimal) (models.Transaction, error) {
	transaction := models.Transaction{
		Date:        date,
		Description: description,
		Category:    "Income",
		Type:        models.TransactionIncome,
		Amount:      amount,
	}

	err := db.Create(&transaction).Error
	if err != nil {
		return models.Transaction{}, err
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged})
	return transaction, nil
}

// AddExpense appends an expense entry tagged with the envelope and
// increments that envelope's spent total.
func AddExpense(db *gorm.DB, envelopeID uuid.UUID, description string, date time.Time, amount decimal.Decimal) (models.Transaction, error) {
	if envelopeID == uuid.Nil {
		return models.Transaction{}, ErrEnvelopeRequired
	}

	var transaction models.Transaction
	err := db.Transaction(func(tx *gorm.DB) error {
		var envelope models.Envelope
		err := tx.First(&envelope, envelopeID).Error
		if err != nil {
			return err
		}

		transaction = models.Transaction{
			Date:         date,
			Description:  description,
			Category:     envelope.Name,
			Type:         models.TransactionExpense,
			Amount:       amount,
			EnvelopeID:   &envelope.ID,
			EnvelopeName: envelope.Name,
		}

		err = tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		return tx.Model(&envelope).Update("spent", envelope.Spent.Add(amount)).Error
	})
	if err != nil {
		return models.Transaction{}, err
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged})
	return transaction, nil
}

// DeleteTransaction removes an entry from the log. For an expense tied to
// an envelope, the envelope's spent total is reduced by the transaction
// amount first, floored at zero, so that add-then-delete is a no-op on the
// envelope.
func DeleteTransaction(db *gorm.DB, id uuid.UUID) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var transaction models.Transaction
		err := tx.First(&transaction, id).Error
		if err != nil {
			return err
		}

		if transaction.Type == models.TransactionExpense && transaction.EnvelopeID != nil {
			var envelope models.Envelope
			err := tx.First(&envelope, *transaction.EnvelopeID).Error

			// The envelope may have been deleted since; the entry
			// is still removable then
			if err == nil {
				spent := envelope.Spent.Sub(transaction.Amount)
				if spent.IsNegative() {
					spent = decimal.Zero
				}

				err = tx.Model(&envelope).Update("spent", spent).Error
				if err != nil {
					return err
				}
			} else if !errors.Is(err, models.ErrResourceNotFound) {
				return err
			}
		}

		return tx.Delete(&transaction).Error
	})
	if err != nil {
		return err
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged})
	return nil
}

// EnvelopeBalance is an envelope with its derived available balance.
type EnvelopeBalance struct {
	models.Envelope
	Available decimal.Decimal `json:"available" example:"200"` // Allocated minus spent, may be negative
}

// Summary is the recomputed state of the whole budget. Totals are never
// stored as running counters; they are derived from the current envelope
// and transaction state on every read, which keeps the ledger
// self-correcting after any edit.
type Summary struct {
	Envelopes      []EnvelopeBalance `json:"envelopes"`
	TotalAllocated decimal.Decimal   `json:"totalAllocated" example:"5000"`
	TotalSpent     decimal.Decimal   `json:"totalSpent" example:"1300"`
	TotalIncome    decimal.Decimal   `json:"totalIncome" example:"7000"`
	TotalAvailable decimal.Decimal   `json:"totalAvailable" example:"5700"` // Income minus spent
}

// Summarize recomputes the budget summary.
func Summarize(db *gorm.DB) (Summary, error) {
	var envelopes []models.Envelope
	err := db.Order("name ASC").Find(&envelopes).Error
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Envelopes:      make([]EnvelopeBalance, 0, len(envelopes)),
		TotalAllocated: decimal.Zero,
		TotalSpent:     decimal.Zero,
		TotalIncome:    decimal.Zero,
	}

	for _, envelope := range envelopes {
		summary.Envelopes = append(summary.Envelopes, EnvelopeBalance{
			Envelope:  envelope,
			Available: envelope.Available(),
		})
		summary.TotalAllocated = summary.TotalAllocated.Add(envelope.Allocated)
		summary.TotalSpent = summary.TotalSpent.Add(envelope.Spent)
	}

	var income decimal.NullDecimal
	err = db.Model(&models.Transaction{}).
		Where(&models.Transaction{Type: models.TransactionIncome}).
		Select("SUM(amount)").
		Row().
		Scan(&income)
	if err != nil {
		return Summary{}, err
	}

	summary.TotalIncome = income.Decimal
	summary.TotalAvailable = summary.TotalIncome.Sub(summary.TotalSpent)

	return summary, nil
}
