package v1_test

import (
	"net/http"

	v1 "github.com/atelier-luz/backend/internal/controllers/v1"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	suite.Assert().True(response.Data.TotalRevenue.IsZero())
	suite.Assert().True(response.Data.ProfitMargin.IsZero())
	suite.Assert().Len(response.Data.MonthlyData, 12)
}

func (suite *TestSuiteStandard) TestDashboardInvalidPeriod() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?type=fortnight", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDashboardCustomPeriod() {
	_ = createTestContract(suite.T(), v1.ContractEditable{
		ClientName:     "Ana Souza",
		EventDate:      "2024-06-15",
		EventCompleted: true,
		Services: models.ServiceLines{
			{Name: "Ensaio Gestante", Price: "R$ 1.000"},
		},
	})

	// Outside the window
	_ = createTestContract(suite.T(), v1.ContractEditable{
		ClientName: "Beatriz Lima",
		EventDate:  "2024-08-01",
		Services: models.ServiceLines{
			{Name: "Ensaio Newborn", Price: "R$ 800"},
		},
	})

	_ = createTestInstallment(suite.T(), v1.InstallmentEditable{
		DueDate: "2024-06-20",
		Amount:  decimal.NewFromInt(300),
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?type=custom&start=2024-06-01&end=2024-06-30", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	suite.Assert().True(response.Data.CurrentMonthRevenue.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.CurrentMonthExpenses.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(response.Data.CurrentMonthNetProfit.Equal(decimal.NewFromInt(700)))
	suite.Assert().True(response.Data.ProfitMargin.Equal(decimal.NewFromInt(70)))
	suite.Assert().True(response.Data.CurrentCashBalance.Equal(response.Data.CurrentMonthRevenue))
	suite.Assert().True(response.Data.TotalRevenue.Equal(decimal.NewFromInt(1000)))
}

func (suite *TestSuiteStandard) TestDashboardOutstandingInvoices() {
	// Dated far in the future so it stays receivable regardless of when
	// the test runs.
	_ = createTestContract(suite.T(), v1.ContractEditable{
		ClientName: "Ana Souza",
		EventDate:  "2030-01-15",
		Services: models.ServiceLines{
			{Name: "Casamento", Price: "R$ 5.000"},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	suite.Assert().True(response.Data.FutureRevenue.Equal(decimal.NewFromInt(5000)))

	require.Len(suite.T(), response.Data.OutstandingInvoices, 1)
	suite.Assert().Equal("Ana Souza", response.Data.OutstandingInvoices[0].ClientName)
	suite.Assert().Equal("Pendiente", response.Data.OutstandingInvoices[0].Status)
	suite.Assert().Equal("2030-01-15", response.Data.OutstandingInvoices[0].DueDate)
}

func (suite *TestSuiteStandard) TestDashboardTopClients() {
	_ = createTestContract(suite.T(), v1.ContractEditable{
		ClientName: "Ana Souza",
		EventDate:  "2024-06-15",
		Services:   models.ServiceLines{{Name: "Casamento", Price: "R$ 5.000"}},
	})
	_ = createTestContract(suite.T(), v1.ContractEditable{
		ClientName: "Beatriz Lima",
		EventDate:  "2024-07-01",
		Services:   models.ServiceLines{{Name: "Ensaio", Price: "R$ 800"}},
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.TopClients, 2)
	suite.Assert().Equal("Ana Souza", response.Data.TopClients[0].Name)
	suite.Assert().True(response.Data.TopClients[0].Total.Equal(decimal.NewFromInt(5000)))
}
