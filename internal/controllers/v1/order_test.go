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
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, o v1.OrderEditable, expectedStatus ...int) v1.OrderResponse {
	if o.ClientName == "" {
		o.ClientName = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "/v1/orders", o)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var order v1.OrderResponse
	test.DecodeResponse(t, &r, &order)

	return order
}

func (suite *TestSuiteStandard) TestOrderCreate() {
	response := createTestOrder(suite.T(), v1.OrderEditable{
		ClientName: "Ana Souza",
		Items: models.OrderItems{
			{Name: "Álbum", Price: decimal.NewFromInt(450), Quantity: 1},
			{Name: "Impressão 20x30", Price: decimal.NewFromInt(35), Quantity: 4},
		},
	})

	require.NotNil(suite.T(), response.Data)
	suite.Assert().Equal(models.OrderOpen, response.Data.Status)
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(590)))
}

// An item without a quantity counts as a single unit in the total.
func (suite *TestSuiteStandard) TestOrderTotalDefaultsQuantity() {
	response := createTestOrder(suite.T(), v1.OrderEditable{
		Items: models.OrderItems{
			{Name: "Álbum", Price: decimal.NewFromInt(450)},
		},
	})

	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(450)))
}

func (suite *TestSuiteStandard) TestOrderCreateInvalidStatus() {
	createTestOrder(suite.T(), v1.OrderEditable{Status: "shipped"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestOrderSubmit() {
	created := createTestOrder(suite.T(), v1.OrderEditable{ClientName: "Ana Souza"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/orders/%s", created.Data.ID), map[string]any{
		"status": "submitted",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OrderResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.OrderSubmitted, response.Data.Status)
}

func (suite *TestSuiteStandard) TestOrderDelete() {
	created := createTestOrder(suite.T(), v1.OrderEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/orders/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/orders/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOrderListStatusFilter() {
	_ = createTestOrder(suite.T(), v1.OrderEditable{ClientName: "Ana Souza", Status: models.OrderFulfilled})
	_ = createTestOrder(suite.T(), v1.OrderEditable{ClientName: "Beatriz Lima"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/orders?status=fulfilled", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OrderListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Ana Souza", response.Data[0].ClientName)
}

func (suite *TestSuiteStandard) TestOrderListContractFilter() {
	contract := createTestContract(suite.T(), v1.ContractEditable{ClientName: "Ana Souza"})

	_ = createTestOrder(suite.T(), v1.OrderEditable{ClientName: "Ana Souza", ContractID: &contract.Data.ID})
	_ = createTestOrder(suite.T(), v1.OrderEditable{ClientName: "Beatriz Lima"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/orders?contract=%s", contract.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OrderListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Ana Souza", response.Data[0].ClientName)
}

func (suite *TestSuiteStandard) TestOrderListInvalidContractUUID() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/orders?contract=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
