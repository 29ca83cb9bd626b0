package v1

import (
	"github.com/atelier-luz/backend/internal/models"
	"github.com/shopspring/decimal"
)

// EnvelopeEditable deliberately excludes the spent amount. It is owned by
// the transaction ledger and only changes through it.
type EnvelopeEditable struct {
	Name       string          `json:"name" example:"Equipamento" default:""`
	Note       string          `json:"note" example:"Bodies, lenses, lighting" default:""`
	Percentage decimal.Decimal `json:"percentage" example:"20"` // Share of income suggested for this envelope
	Allocated  decimal.Decimal `json:"allocated" example:"1000"`
}

// model returns the database resource for the API representation of the
// editable fields
func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		Name:       editable.Name,
		Note:       editable.Note,
		Percentage: editable.Percentage,
		Allocated:  editable.Allocated,
	}
}

type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Spent     decimal.Decimal `json:"spent" example:"600"`
	Available decimal.Decimal `json:"available" example:"400"` // Allocated minus spent
}

// newEnvelope returns the API v1 representation of the resource
func newEnvelope(model models.Envelope) Envelope {
	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			Name:       model.Name,
			Note:       model.Note,
			Percentage: model.Percentage,
			Allocated:  model.Allocated,
		},
		Spent:     model.Spent,
		Available: model.Available(),
	}
}

type EnvelopeResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Envelope `json:"data"`                                                          // The envelope data, if the request was successful
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeQueryFilter struct {
	Name   string `form:"name" filterField:"false"` // Glob pattern matched against the name
	Offset uint   `form:"offset" filterField:"false"`
	Limit  int    `form:"limit" filterField:"false"`
}
