package v1

import (
	"github.com/atelier-luz/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type OrderEditable struct {
	ContractID *uuid.UUID         `json:"contractId"` // The contract this order belongs to, if any
	ClientName string             `json:"clientName" example:"Ana Souza" default:""`
	Items      models.OrderItems  `json:"items"`
	Status     models.OrderStatus `json:"status" example:"open" default:"open"`
	Note       string             `json:"note" example:"Wants matte prints" default:""`
}

// model returns the database resource for the API representation of the
// editable fields
func (editable OrderEditable) model() models.Order {
	return models.Order{
		ContractID: editable.ContractID,
		ClientName: editable.ClientName,
		Items:      editable.Items,
		Status:     editable.Status,
		Note:       editable.Note,
	}
}

type Order struct {
	models.DefaultModel
	OrderEditable
	Total decimal.Decimal `json:"total" example:"450"` // Sum of the line items
}

// newOrder returns the API v1 representation of the resource
func newOrder(model models.Order) Order {
	return Order{
		DefaultModel: model.DefaultModel,
		OrderEditable: OrderEditable{
			ContractID: model.ContractID,
			ClientName: model.ClientName,
			Items:      model.Items,
			Status:     model.Status,
			Note:       model.Note,
		},
		Total: model.Total(),
	}
}

type OrderResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Order  `json:"data"`                                                          // The order data, if the request was successful
}

type OrderListResponse struct {
	Data       []Order     `json:"data"`                                                          // List of orders
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type OrderQueryFilter struct {
	ClientName string `form:"clientName" filterField:"false"` // Glob pattern matched against the client name
	Status     string `form:"status" filterField:"false"`
	Contract   string `form:"contract" filterField:"false"` // Filter by contract ID
	Offset     uint   `form:"offset" filterField:"false"`
	Limit      int    `form:"limit" filterField:"false"`
}

// model converts the filter into a resource struct usable in a gorm Where.
func (f OrderQueryFilter) model() (models.Order, error) {
	if f.Status != "" && !slices.Contains([]models.OrderStatus{models.OrderOpen, models.OrderSubmitted, models.OrderFulfilled}, models.OrderStatus(f.Status)) {
		return models.Order{}, errOrderStatusInvalid
	}

	var contractID *uuid.UUID
	if f.Contract != "" {
		id, err := uuid.Parse(f.Contract)
		if err != nil {
			return models.Order{}, err
		}
		contractID = &id
	}

	return models.Order{
		Status:     models.OrderStatus(f.Status),
		ContractID: contractID,
	}, nil
}
