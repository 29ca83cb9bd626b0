package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount as a Brazilian Real currency string.
func FormatBRL(d decimal.Decimal) string {
	f, _ := d.Float64()
	return brlPrinter.Sprintf("%v", currency.Symbol(currency.BRL.Amount(f)))
}

// FormattedAmounts is the currency-formatted view of the derived amounts,
// for API consumers that display rather than calculate.
type FormattedAmounts struct {
	Services  string `json:"services" example:"R$ 1.000,00"`
	Store     string `json:"store" example:"R$ 0,00"`
	Travel    string `json:"travel" example:"R$ 100,00"`
	Total     string `json:"total" example:"R$ 1.100,00"`
	Deposit   string `json:"deposit" example:"R$ 200,00"`
	Remaining string `json:"remaining" example:"R$ 900,00"`
}

// Formatted renders all five derived amounts as pt-BR currency.
func (a Amounts) Formatted() FormattedAmounts {
	return FormattedAmounts{
		Services:  FormatBRL(a.Services),
		Store:     FormatBRL(a.Store),
		Travel:    FormatBRL(a.Travel),
		Total:     FormatBRL(a.Total),
		Deposit:   FormatBRL(a.Deposit),
		Remaining: FormatBRL(a.Remaining),
	}
}
