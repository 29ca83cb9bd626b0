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

func createTestProduct(t *testing.T, p v1.ProductEditable, expectedStatus ...int) v1.ProductResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "/v1/products", p)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var product v1.ProductResponse
	test.DecodeResponse(t, &r, &product)

	return product
}

func (suite *TestSuiteStandard) TestProductCreate() {
	response := createTestProduct(suite.T(), v1.ProductEditable{
		Name:     "Álbum 30x30",
		Category: "Álbuns",
		Price:    decimal.NewFromInt(450),
	})

	require.NotNil(suite.T(), response.Data)
	suite.Assert().Equal("Álbum 30x30", response.Data.Name)
	suite.Assert().True(response.Data.Price.Equal(decimal.NewFromInt(450)))
	suite.Assert().False(response.Data.Archived)
}

func (suite *TestSuiteStandard) TestProductArchive() {
	created := createTestProduct(suite.T(), v1.ProductEditable{Name: "Álbum 30x30"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/products/%s", created.Data.ID), map[string]any{
		"archived": true,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProductResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Archived)
}

func (suite *TestSuiteStandard) TestProductDelete() {
	created := createTestProduct(suite.T(), v1.ProductEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/products/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/products/%s", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProductListOrderedByCategory() {
	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Pôster", Category: "Impressões"})
	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Álbum 30x30", Category: "Álbuns"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/products", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProductListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	suite.Assert().Equal("Impressões", response.Data[0].Category)
	suite.Assert().Equal("Álbuns", response.Data[1].Category)
}

func (suite *TestSuiteStandard) TestProductListCategoryFilter() {
	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Álbum 30x30", Category: "Álbuns"})
	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Pôster", Category: "Impressões"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/products?category=Álbuns", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProductListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Álbum 30x30", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestProductListNameGlob() {
	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Álbum 30x30"})
	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Pôster A2"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/products?name=*30x30", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProductListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	suite.Assert().Equal("Álbum 30x30", response.Data[0].Name)
}
