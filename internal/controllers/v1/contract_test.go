package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/atelier-luz/backend/internal/controllers/v1"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestContract(t *testing.T, c v1.ContractEditable, expectedStatus ...int) v1.ContractResponse {
	if c.ClientName == "" {
		c.ClientName = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "/v1/contracts", c)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var contract v1.ContractResponse
	test.DecodeResponse(t, &r, &contract)

	return contract
}

func (suite *TestSuiteStandard) TestContractCreate() {
	response := createTestContract(suite.T(), v1.ContractEditable{
		ClientName: "Ana Souza",
		EventDate:  "2024-06-15",
		Services: models.ServiceLines{
			{Name: "Ensaio Gestante", Price: "R$ 1.000"},
		},
	})

	require.NotNil(suite.T(), response.Data)
	suite.Assert().Equal("Ana Souza", response.Data.ClientName)
	suite.Assert().True(response.Data.Amounts.Total.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.Amounts.Deposit.Equal(decimal.NewFromInt(200)))
	suite.Assert().Equal(models.StatusPendingApproval, response.Data.Status)
	suite.Assert().Contains(response.Data.FormattedAmounts.Total, "R$")
}

func (suite *TestSuiteStandard) TestContractCreateInvalidStatus() {
	createTestContract(suite.T(), v1.ContractEditable{Status: "signed"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContractCreateEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/contracts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContractGet() {
	created := createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/contracts/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContractResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(created.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestContractGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/contracts/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestContractGetInvalidUUID() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/contracts/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContractUpdate() {
	created := createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/contracts/%s", created.Data.ID), map[string]any{
		"depositPaid": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContractResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.DepositPaid)

	// Derived from the flag since no status is stored
	suite.Assert().Equal(models.StatusConfirmed, response.Data.Status)
}

func (suite *TestSuiteStandard) TestContractDelete() {
	created := createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza"})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/contracts/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/contracts/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestContractList() {
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza", EventDate: "2024-06-15"})
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Beatriz Lima", EventDate: "2024-07-20"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/contracts", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContractListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Len(response.Data, 2)
	suite.Require().NotNil(response.Pagination)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestContractListGlobFilter() {
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza"})
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Beatriz Lima"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/contracts?clientName=Ana*", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContractListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Ana Souza", response.Data[0].ClientName)
}

func (suite *TestSuiteStandard) TestContractListPeriodFilter() {
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza", EventDate: "2024-01-15"})
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Beatriz Lima", EventDate: "2024-02-01"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/contracts?period=custom&start=2024-01-01&end=2024-01-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContractListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Ana Souza", response.Data[0].ClientName)
}

func (suite *TestSuiteStandard) TestContractListInvalidPeriod() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/contracts?period=fortnight", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContractListStatusFilter() {
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza", Status: models.StatusConfirmed})
	_ = createTestContract(suite.T(), v1.ContractEditable{ClientName: "Beatriz Lima", Status: models.StatusCancelled})

	r := test.Request(suite.T(), http.MethodGet, "/v1/contracts?status=confirmed", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContractListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Ana Souza", response.Data[0].ClientName)
}

func (suite *TestSuiteStandard) TestContractListPagination() {
	for i := 0; i < 5; i++ {
		_ = createTestContract(suite.T(), v1.ContractEditable{EventDate: fmt.Sprintf("2024-06-%02d", i+1)})
	}

	r := test.Request(suite.T(), http.MethodGet, "/v1/contracts?offset=2&limit=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ContractListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	suite.Assert().Equal(int64(5), response.Pagination.Total)
	suite.Assert().Equal(uint(2), response.Pagination.Offset)
	suite.Assert().Equal(2, response.Pagination.Limit)
}
