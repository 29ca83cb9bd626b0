// Package finance implements the contract financial derivation and
// period-bucketing engine. Every reporting view (calendar, dashboard,
// budget planner) goes through this package to turn raw records into
// money figures and calendar placement.
package finance

import (
	"strings"

	"github.com/atelier-luz/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Amounts is the derived money view of a contract. It is computed on every
// read and never persisted. Total is authoritative for all downstream
// reporting and overrides the stored total when service lines exist.
type Amounts struct {
	Services  decimal.Decimal `json:"services"`
	Store     decimal.Decimal `json:"store"`
	Travel    decimal.Decimal `json:"travel"`
	Total     decimal.Decimal `json:"total"`
	Deposit   decimal.Decimal `json:"deposit"`
	Remaining decimal.Decimal `json:"remaining"`
}

var (
	depositServiceShare = decimal.RequireFromString("0.2")
	depositStoreShare   = decimal.RequireFromString("0.5")
)

// ParsePrice parses a price that may be stored as a currency-formatted
// string like "R$ 1.000". All non-digit characters are stripped before
// parsing; anything unparsable coerces to zero, never to an error.
func ParsePrice(s string) decimal.Decimal {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(digits.String())
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Derive computes the five derived amounts for a contract.
//
// The service-line sum wins over the stored total. When no service line
// yields a value, the services share falls back to whatever remains of the
// stored total after store items and travel. Only the final total is
// rounded, intermediate sums never are.
func Derive(contract models.Contract) Amounts {
	lines, _ := contract.ServiceLineSource()

	services := decimal.Zero
	for _, line := range lines {
		quantity := line.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		services = services.Add(ParsePrice(line.Price).Mul(decimal.NewFromInt(int64(quantity))))
	}

	store := decimal.Zero
	for _, item := range contract.StoreItems {
		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		store = store.Add(item.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	travel := contract.TravelFee

	if services.IsZero() {
		services = noNegative(contract.TotalAmount.Sub(store).Sub(travel))
	}

	total := services.Add(store).Add(travel).Round(0)

	var deposit decimal.Decimal
	if services.IsZero() {
		deposit = store.Mul(depositStoreShare).Ceil()
	} else {
		deposit = services.Mul(depositServiceShare).Add(store.Mul(depositStoreShare)).Ceil()
	}

	return Amounts{
		Services:  services,
		Store:     store,
		Travel:    travel,
		Total:     total,
		Deposit:   deposit,
		Remaining: noNegative(total.Sub(deposit)),
	}
}

// noNegative floors a value at zero.
func noNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}
