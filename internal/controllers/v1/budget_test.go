package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/atelier-luz/backend/internal/controllers/v1"
	"github.com/atelier-luz/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createTestEnvelope(t *testing.T, e v1.EnvelopeEditable, expectedStatus ...int) v1.EnvelopeResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "/v1/envelopes", e)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var envelope v1.EnvelopeResponse
	test.DecodeResponse(t, &r, &envelope)

	return envelope
}

func (suite *TestSuiteStandard) TestEnvelopeCreate() {
	response := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:      "Equipamento",
		Allocated: decimal.NewFromInt(1000),
	})

	require.NotNil(suite.T(), response.Data)
	suite.Assert().Equal("Equipamento", response.Data.Name)
	suite.Assert().True(response.Data.Available.Equal(decimal.NewFromInt(1000)))
}

func (suite *TestSuiteStandard) TestEnvelopeNameConflict() {
	createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Equipamento"})
	createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Equipamento"}, http.StatusBadRequest)
}

// TestEnvelopeUpdateCannotSetSpent verifies that the spent amount is not
// editable through the API; it only changes through the transaction log.
func (suite *TestSuiteStandard) TestEnvelopeUpdateCannotSetSpent() {
	created := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Allocated: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/envelopes/%s", created.Data.ID), map[string]any{
		"spent":     500,
		"allocated": 1200,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Data.Allocated.Equal(decimal.NewFromInt(1200)))
	suite.Assert().True(response.Data.Spent.IsZero())
}

func (suite *TestSuiteStandard) TestBudgetSummaryEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	suite.Assert().Empty(response.Data.Envelopes)
	suite.Assert().True(response.Data.TotalIncome.IsZero())
}

// TestBudgetFlow walks an envelope through income, expense and deletion
// and verifies the summary after each step.
func (suite *TestSuiteStandard) TestBudgetFlow() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:      "Equipamento",
		Allocated: decimal.NewFromInt(1000),
	})

	// Income
	r := test.Request(suite.T(), http.MethodPost, "/v1/budget/transactions", map[string]any{
		"type":        "income",
		"description": "Contract deposit",
		"amount":      2000,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Expense against the envelope
	r = test.Request(suite.T(), http.MethodPost, "/v1/budget/transactions", map[string]any{
		"type":        "expense",
		"description": "Nova lente",
		"amount":      600,
		"envelopeId":  envelope.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var transaction v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &transaction)
	suite.Assert().Equal("Equipamento", transaction.Data.Category)

	r = test.Request(suite.T(), http.MethodGet, "/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var summary v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &summary)

	suite.Assert().True(summary.Data.TotalIncome.Equal(decimal.NewFromInt(2000)))
	suite.Assert().True(summary.Data.TotalSpent.Equal(decimal.NewFromInt(600)))
	suite.Assert().True(summary.Data.TotalAvailable.Equal(decimal.NewFromInt(1400)))

	require.Len(suite.T(), summary.Data.Envelopes, 1)
	suite.Assert().True(summary.Data.Envelopes[0].Available.Equal(decimal.NewFromInt(400)))

	// Deleting the expense restores the envelope
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budget/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "/v1/budget", "")
	test.DecodeResponse(suite.T(), &r, &summary)
	suite.Assert().True(summary.Data.TotalSpent.IsZero())
	suite.Assert().True(summary.Data.Envelopes[0].Available.Equal(decimal.NewFromInt(1000)))
}

func (suite *TestSuiteStandard) TestTransactionExpenseRequiresEnvelope() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/budget/transactions", map[string]any{
		"type":   "expense",
		"amount": 600,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionInvalidType() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/budget/transactions", map[string]any{
		"type":   "transfer",
		"amount": 600,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionListFilter() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Allocated: decimal.NewFromInt(1000)})

	r := test.Request(suite.T(), http.MethodPost, "/v1/budget/transactions", map[string]any{
		"type": "income", "description": "a", "amount": 100,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodPost, "/v1/budget/transactions", map[string]any{
		"type": "expense", "description": "b", "amount": 50, "envelopeId": envelope.Data.ID,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet, "/v1/budget/transactions?type=income", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("a", response.Data[0].Description)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budget/transactions?envelope=%s", envelope.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("b", response.Data[0].Description)
}
