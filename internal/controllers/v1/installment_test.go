package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/atelier-luz/backend/internal/controllers/v1"
	"github.com/atelier-luz/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createTestInstallment(t *testing.T, i v1.InstallmentEditable, expectedStatus ...int) v1.InstallmentResponse {
	if i.Amount.IsZero() {
		i.Amount = decimal.NewFromInt(350)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "/v1/installments", i)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var installment v1.InstallmentResponse
	test.DecodeResponse(t, &r, &installment)

	return installment
}

func (suite *TestSuiteStandard) TestInstallmentCreate() {
	response := createTestInstallment(suite.T(), v1.InstallmentEditable{
		Note:    "Camera body, 3/10",
		DueDate: "2024-07-01",
		Amount:  decimal.NewFromInt(350),
	})

	require.NotNil(suite.T(), response.Data)
	suite.Assert().Equal("Camera body, 3/10", response.Data.Note)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(350)))
}

func (suite *TestSuiteStandard) TestInstallmentCreateAmountNotPositive() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/installments", map[string]any{
		"note":   "free lunch",
		"amount": 0,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestInstallmentUpdate() {
	created := createTestInstallment(suite.T(), v1.InstallmentEditable{Note: "Camera body, 3/10"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/installments/%s", created.Data.ID), map[string]any{
		"dueDate": "2024-08-01",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InstallmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("2024-08-01", response.Data.DueDate)
	suite.Assert().Equal("Camera body, 3/10", response.Data.Note)
}

func (suite *TestSuiteStandard) TestInstallmentDelete() {
	created := createTestInstallment(suite.T(), v1.InstallmentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/installments/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/installments/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestInstallmentListNoteFilter() {
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{Note: "Camera body, 3/10"})
	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{Note: "Studio lights, 1/4"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/installments?note=Camera*", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InstallmentListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Camera body, 3/10", response.Data[0].Note)
}
