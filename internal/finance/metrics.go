package finance

import (
	"sort"
	"time"

	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/types"
	"github.com/shopspring/decimal"
)

// OutstandingInvoice is a projected-but-uncompleted contract's derived
// amount, treated as receivable.
type OutstandingInvoice struct {
	ClientName string          `json:"clientName" example:"Ana Souza"`
	DueDate    string          `json:"dueDate" example:"2024-06-15"`
	Amount     decimal.Decimal `json:"amount" example:"1100"`
	Status     string          `json:"status" example:"Pendiente"`
}

// ClientTotal is one row of the top-clients ranking.
type ClientTotal struct {
	Name  string          `json:"name" example:"Ana Souza"`
	Total decimal.Decimal `json:"total" example:"4200"`
}

// CategoryExpense is one bucket of the expense breakdown.
type CategoryExpense struct {
	Name   string          `json:"name" example:"Investments"`
	Amount decimal.Decimal `json:"amount" example:"820.50"`
}

// Metrics is the financial dashboard view for a period.
//
// The completed revenue doubles as the cash balance; no separate cash
// ledger exists.
type Metrics struct {
	CurrentMonthRevenue   decimal.Decimal `json:"currentMonthRevenue" example:"2317.34"`  // Derived totals of completed contracts in the period
	CurrentMonthExpenses  decimal.Decimal `json:"currentMonthExpenses" example:"133.70"`  // Installments due in the period
	CurrentMonthNetProfit decimal.Decimal `json:"currentMonthNetProfit" example:"2183.64"`
	ProfitMargin          decimal.Decimal `json:"profitMargin" example:"94.23"` // Percentage, 0 when there is no completed revenue
	CurrentCashBalance    decimal.Decimal `json:"currentCashBalance" example:"2317.34"`
	TotalRevenue          decimal.Decimal `json:"totalRevenue" example:"5000"`  // All matching contracts regardless of completion
	FutureRevenue         decimal.Decimal `json:"futureRevenue" example:"1500"` // Not completed, today or later

	MonthlyData         []MonthRow           `json:"monthlyData"`
	ExpensesByCategory  []CategoryExpense    `json:"expensesByCategory"`
	OutstandingInvoices []OutstandingInvoice `json:"outstandingInvoices"` // Ascending by due date, first 10
	TopClients          []ClientTotal        `json:"topClients"`          // Top 5 by total, descending
}

// The "Other" expense bucket is a fixed share of completed revenue, a
// placeholder until a real expense-category ledger exists.
var otherExpenseShare = decimal.RequireFromString("0.1")

type outstanding struct {
	invoice OutstandingInvoice
	due     time.Time
}

// ComputeMetrics reduces all contracts and installments into the top-line
// KPIs, the expense breakdown, the top-clients ranking and the
// outstanding-invoices list for the selected period.
func ComputeMetrics(contracts []models.Contract, installments []models.InvestmentInstallment, period Period, now time.Time) Metrics {
	today := types.Midnight(now)

	totalRevenue := decimal.Zero
	completedRevenue := decimal.Zero
	futureRevenue := decimal.Zero

	clientTotals := make(map[string]decimal.Decimal)
	var invoices []outstanding

	for _, contract := range contracts {
		if !period.Matches(contract.EffectiveDateString(), now) {
			continue
		}

		date, ok := contract.EffectiveDate()
		if !ok {
			continue
		}

		total := Derive(contract).Total
		totalRevenue = totalRevenue.Add(total)

		if contract.EventCompleted {
			completedRevenue = completedRevenue.Add(total)
		} else if !date.Before(today) {
			futureRevenue = futureRevenue.Add(total)
			invoices = append(invoices, outstanding{
				invoice: OutstandingInvoice{
					ClientName: contract.ClientName,
					DueDate:    types.DayKey(date),
					Amount:     total,
					Status:     "Pendiente",
				},
				due: date,
			})
		}

		clientTotals[contract.ClientName] = clientTotals[contract.ClientName].Add(total)
	}

	expenses := decimal.Zero
	for _, installment := range installments {
		if !period.Matches(installment.DueDate, now) {
			continue
		}

		expenses = expenses.Add(installment.Amount)
	}

	netProfit := completedRevenue.Sub(expenses)

	profitMargin := decimal.Zero
	if completedRevenue.IsPositive() {
		profitMargin = netProfit.Div(completedRevenue).Mul(decimal.NewFromInt(100))
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].due.Before(invoices[j].due)
	})
	if len(invoices) > 10 {
		invoices = invoices[:10]
	}

	outstandingInvoices := make([]OutstandingInvoice, 0, len(invoices))
	for _, o := range invoices {
		outstandingInvoices = append(outstandingInvoices, o.invoice)
	}

	topClients := make([]ClientTotal, 0, len(clientTotals))
	for name, total := range clientTotals {
		topClients = append(topClients, ClientTotal{Name: name, Total: total})
	}
	sort.Slice(topClients, func(i, j int) bool {
		if !topClients[i].Total.Equal(topClients[j].Total) {
			return topClients[i].Total.GreaterThan(topClients[j].Total)
		}
		return topClients[i].Name < topClients[j].Name
	})
	if len(topClients) > 5 {
		topClients = topClients[:5]
	}

	expensesByCategory := make([]CategoryExpense, 0, 2)
	if expenses.IsPositive() {
		expensesByCategory = append(expensesByCategory, CategoryExpense{Name: "Investments", Amount: expenses})
	}
	if other := completedRevenue.Mul(otherExpenseShare); other.IsPositive() {
		expensesByCategory = append(expensesByCategory, CategoryExpense{Name: "Other", Amount: other})
	}

	return Metrics{
		CurrentMonthRevenue:   completedRevenue,
		CurrentMonthExpenses:  expenses,
		CurrentMonthNetProfit: netProfit,
		ProfitMargin:          profitMargin,
		CurrentCashBalance:    completedRevenue,
		TotalRevenue:          totalRevenue,
		FutureRevenue:         futureRevenue,
		MonthlyData:           MonthlyData(contracts, installments, period, now),
		ExpensesByCategory:    expensesByCategory,
		OutstandingInvoices:   outstandingInvoices,
		TopClients:            topClients,
	}
}
