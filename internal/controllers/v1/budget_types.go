package v1

import (
	"time"

	"github.com/atelier-luz/backend/internal/ledger"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date        time.Time              `json:"date" example:"2024-05-10T00:00:00Z"`
	Description string                 `json:"description" example:"Nova lente 50mm" default:""`
	Type        models.TransactionType `json:"type" example:"expense"`
	Amount      decimal.Decimal        `json:"amount" example:"350"`
	EnvelopeID  *uuid.UUID             `json:"envelopeId"` // Required for expenses, ignored for income
}

type Transaction struct {
	models.DefaultModel
	Date         time.Time              `json:"date" example:"2024-05-10T00:00:00Z"`
	Description  string                 `json:"description" example:"Nova lente 50mm"`
	Category     string                 `json:"category" example:"Equipamento"`
	Type         models.TransactionType `json:"type" example:"expense"`
	Amount       decimal.Decimal        `json:"amount" example:"350"`
	EnvelopeID   *uuid.UUID             `json:"envelopeId"`
	EnvelopeName string                 `json:"envelopeName" example:"Equipamento"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		Date:         model.Date,
		Description:  model.Description,
		Category:     model.Category,
		Type:         model.Type,
		Amount:       model.Amount,
		EnvelopeID:   model.EnvelopeID,
		EnvelopeName: model.EnvelopeName,
	}
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The transaction data, if the request was successful
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionQueryFilter struct {
	Type       string `form:"type"`     // Filter by transaction type
	EnvelopeID string `form:"envelope"` // Filter by envelope ID
	Offset     uint   `form:"offset" filterField:"false"`
	Limit      int    `form:"limit" filterField:"false"`
}

// model converts the filter into a resource struct usable in a gorm Where.
func (f TransactionQueryFilter) model() (models.Transaction, error) {
	var envelopeID *uuid.UUID
	if f.EnvelopeID != "" {
		id, err := uuid.Parse(f.EnvelopeID)
		if err != nil {
			return models.Transaction{}, err
		}
		envelopeID = &id
	}

	return models.Transaction{
		Type:       models.TransactionType(f.Type),
		EnvelopeID: envelopeID,
	}, nil
}

type BudgetResponse struct {
	Error *string         `json:"error" example:"there is no Envelope matching your query"` // The error, if any occurred
	Data  *ledger.Summary `json:"data"`                                                     // The budget summary, if the request was successful
}
