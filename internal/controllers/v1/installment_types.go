package v1

import (
	"github.com/atelier-luz/backend/internal/models"
	"github.com/shopspring/decimal"
)

type InstallmentEditable struct {
	Note    string          `json:"note" example:"Camera body, 3/10" default:""`
	DueDate string          `json:"dueDate" example:"2024-07-01" default:""` // Calendar-date string, determines the month the expense lands in
	Amount  decimal.Decimal `json:"amount" example:"350"`
}

// model returns the database resource for the API representation of the
// editable fields
func (editable InstallmentEditable) model() models.InvestmentInstallment {
	return models.InvestmentInstallment{
		Note:    editable.Note,
		DueDate: editable.DueDate,
		Amount:  editable.Amount,
	}
}

type Installment struct {
	models.DefaultModel
	InstallmentEditable
}

// newInstallment returns the API v1 representation of the resource
func newInstallment(model models.InvestmentInstallment) Installment {
	return Installment{
		DefaultModel: model.DefaultModel,
		InstallmentEditable: InstallmentEditable{
			Note:    model.Note,
			DueDate: model.DueDate,
			Amount:  model.Amount,
		},
	}
}

type InstallmentResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Installment `json:"data"`                                                          // The installment data, if the request was successful
}

type InstallmentListResponse struct {
	Data       []Installment `json:"data"`                                                          // List of installments
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type InstallmentQueryFilter struct {
	Note   string `form:"note" filterField:"false"` // Glob pattern matched against the note
	Offset uint   `form:"offset" filterField:"false"`
	Limit  int    `form:"limit" filterField:"false"`
}
