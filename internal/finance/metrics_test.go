package finance_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/atelier-luz/backend/internal/finance"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metricsNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func TestComputeMetricsEmpty(t *testing.T) {
	metrics := finance.ComputeMetrics(nil, nil, finance.Period{}, metricsNow)

	assert.True(t, metrics.TotalRevenue.IsZero())
	assert.True(t, metrics.ProfitMargin.IsZero(), "no completed revenue must not divide by zero")
	assert.Len(t, metrics.MonthlyData, 12)
	assert.Empty(t, metrics.OutstandingInvoices)
	assert.Empty(t, metrics.TopClients)
	assert.Empty(t, metrics.ExpensesByCategory)
}

func TestComputeMetricsRevenue(t *testing.T) {
	contracts := []models.Contract{
		{
			ClientName:     "Ana Souza",
			EventDate:      "2024-03-10",
			EventCompleted: true,
			Services:       models.ServiceLines{{Price: "1000"}},
		},
		{
			ClientName: "Beatriz Lima",
			EventDate:  "2024-06-20",
			Services:   models.ServiceLines{{Price: "500"}},
		},
		// In the past and not completed: counts for total revenue only
		{
			ClientName: "Carla Dias",
			EventDate:  "2024-02-01",
			Services:   models.ServiceLines{{Price: "200"}},
		},
	}

	installments := []models.InvestmentInstallment{
		{DueDate: "2024-03-05", Amount: decimal.NewFromInt(150)},
	}

	metrics := finance.ComputeMetrics(contracts, installments, finance.Period{}, metricsNow)

	assert.True(t, metrics.TotalRevenue.Equal(decimal.NewFromInt(1700)))
	assert.True(t, metrics.FutureRevenue.Equal(decimal.NewFromInt(500)))

	// Completed revenue doubles as current revenue and cash balance
	assert.True(t, metrics.CurrentMonthRevenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, metrics.CurrentCashBalance.Equal(metrics.CurrentMonthRevenue))

	assert.True(t, metrics.CurrentMonthExpenses.Equal(decimal.NewFromInt(150)))
	assert.True(t, metrics.CurrentMonthNetProfit.Equal(decimal.NewFromInt(850)))

	// 850 / 1000 * 100
	assert.True(t, metrics.ProfitMargin.Equal(decimal.NewFromInt(85)), "profit margin is %s", metrics.ProfitMargin)
}

func TestComputeMetricsOutstandingInvoices(t *testing.T) {
	// Twelve future contracts, created in reverse date order
	var contracts []models.Contract
	for i := 12; i >= 1; i-- {
		contracts = append(contracts, models.Contract{
			ClientName: fmt.Sprintf("Client %02d", i),
			EventDate:  fmt.Sprintf("2024-07-%02d", i),
			Services:   models.ServiceLines{{Price: "100"}},
		})
	}

	metrics := finance.ComputeMetrics(contracts, nil, finance.Period{}, metricsNow)

	// Ascending by due date, truncated to ten
	require.Len(t, metrics.OutstandingInvoices, 10)
	assert.Equal(t, "2024-07-01", metrics.OutstandingInvoices[0].DueDate)
	assert.Equal(t, "2024-07-10", metrics.OutstandingInvoices[9].DueDate)

	for _, invoice := range metrics.OutstandingInvoices {
		assert.Equal(t, "Pendiente", invoice.Status)
	}
}

func TestComputeMetricsTopClients(t *testing.T) {
	var contracts []models.Contract
	for i := 1; i <= 7; i++ {
		contracts = append(contracts, models.Contract{
			ClientName:     fmt.Sprintf("Client %d", i),
			EventDate:      "2024-03-01",
			EventCompleted: true,
			Services:       models.ServiceLines{{Price: fmt.Sprintf("%d", i*100)}},
		})
	}

	// Two contracts for the same client accumulate
	contracts = append(contracts, models.Contract{
		ClientName:     "Client 1",
		EventDate:      "2024-04-01",
		EventCompleted: true,
		Services:       models.ServiceLines{{Price: "1000"}},
	})

	metrics := finance.ComputeMetrics(contracts, nil, finance.Period{}, metricsNow)

	require.Len(t, metrics.TopClients, 5)
	assert.Equal(t, "Client 1", metrics.TopClients[0].Name)
	assert.True(t, metrics.TopClients[0].Total.Equal(decimal.NewFromInt(1100)))
	assert.Equal(t, "Client 7", metrics.TopClients[1].Name)
}

func TestComputeMetricsTopClientsTiebreak(t *testing.T) {
	contracts := []models.Contract{
		{ClientName: "Zoe", EventDate: "2024-03-01", Services: models.ServiceLines{{Price: "100"}}},
		{ClientName: "Ana", EventDate: "2024-03-01", Services: models.ServiceLines{{Price: "100"}}},
	}

	metrics := finance.ComputeMetrics(contracts, nil, finance.Period{}, metricsNow)

	require.Len(t, metrics.TopClients, 2)
	assert.Equal(t, "Ana", metrics.TopClients[0].Name)
	assert.Equal(t, "Zoe", metrics.TopClients[1].Name)
}

func TestComputeMetricsExpensesByCategory(t *testing.T) {
	contracts := []models.Contract{
		{
			ClientName:     "Ana Souza",
			EventDate:      "2024-03-10",
			EventCompleted: true,
			Services:       models.ServiceLines{{Price: "1000"}},
		},
	}

	installments := []models.InvestmentInstallment{
		{DueDate: "2024-03-05", Amount: decimal.NewFromInt(150)},
	}

	metrics := finance.ComputeMetrics(contracts, installments, finance.Period{}, metricsNow)

	require.Len(t, metrics.ExpensesByCategory, 2)
	assert.Equal(t, "Investments", metrics.ExpensesByCategory[0].Name)
	assert.True(t, metrics.ExpensesByCategory[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "Other", metrics.ExpensesByCategory[1].Name)
	assert.True(t, metrics.ExpensesByCategory[1].Amount.Equal(decimal.NewFromInt(100)))
}

// TestComputeMetricsPeriodFiltered verifies that the same period filter
// applies to contracts and installments alike.
func TestComputeMetricsPeriodFiltered(t *testing.T) {
	contracts := []models.Contract{
		{ClientName: "Ana", EventDate: "2024-01-10", EventCompleted: true, Services: models.ServiceLines{{Price: "1000"}}},
		{ClientName: "Ana", EventDate: "2023-01-10", EventCompleted: true, Services: models.ServiceLines{{Price: "9000"}}},
	}

	installments := []models.InvestmentInstallment{
		{DueDate: "2024-02-05", Amount: decimal.NewFromInt(150)},
		{DueDate: "2023-02-05", Amount: decimal.NewFromInt(900)},
	}

	period := finance.Period{Type: finance.PeriodYear}
	metrics := finance.ComputeMetrics(contracts, installments, period, metricsNow)

	assert.True(t, metrics.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, metrics.CurrentMonthExpenses.Equal(decimal.NewFromInt(150)))
}
