package finance

import (
	"time"

	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/types"
	"github.com/shopspring/decimal"
)

// MonthRow is one calendar month of the current year in the monthly
// income/expense table.
type MonthRow struct {
	Month    types.Month     `json:"month" example:"2024-05"`
	Income   decimal.Decimal `json:"income" example:"2317.34"`   // Derived totals of all matching contracts
	Expenses decimal.Decimal `json:"expenses" example:"133.70"`  // Investment installments due in the month
	Profit   decimal.Decimal `json:"profit" example:"2183.64"`   // Earned income minus expenses
	Earned   decimal.Decimal `json:"earned" example:"1200.00"`   // Income of completed events only
	Forecast decimal.Decimal `json:"forecast" example:"1117.34"` // Income of future, not yet completed events
}

// MonthlyData buckets contracts and investment installments into the twelve
// calendar months of the current year.
//
// The month index is taken from the calendar month of the record's
// effective date regardless of its year: a record from another year that
// the period matches still lands in this year's row for its month. This
// mirrors the behavior the reporting views were built on; see DESIGN.md
// before changing it.
func MonthlyData(contracts []models.Contract, installments []models.InvestmentInstallment, period Period, now time.Time) []MonthRow {
	rows := make([]MonthRow, 12)
	for i := range rows {
		rows[i] = MonthRow{
			Month:    types.NewMonth(now.Year(), time.Month(i+1)),
			Income:   decimal.Zero,
			Expenses: decimal.Zero,
			Profit:   decimal.Zero,
			Earned:   decimal.Zero,
			Forecast: decimal.Zero,
		}
	}

	today := types.Midnight(now)

	for _, contract := range contracts {
		if !period.Matches(contract.EffectiveDateString(), now) {
			continue
		}

		date, ok := contract.EffectiveDate()
		if !ok {
			continue
		}

		total := Derive(contract).Total
		i := int(date.Month()) - 1

		rows[i].Income = rows[i].Income.Add(total)

		if contract.EventCompleted {
			rows[i].Earned = rows[i].Earned.Add(total)
			rows[i].Profit = rows[i].Profit.Add(total)
		} else if !date.Before(today) {
			rows[i].Forecast = rows[i].Forecast.Add(total)
		}
	}

	for _, installment := range installments {
		if !period.Matches(installment.DueDate, now) {
			continue
		}

		due, ok := installment.Due()
		if !ok {
			continue
		}

		i := int(due.Month()) - 1
		rows[i].Expenses = rows[i].Expenses.Add(installment.Amount)
		rows[i].Profit = rows[i].Profit.Sub(installment.Amount)
	}

	return rows
}
