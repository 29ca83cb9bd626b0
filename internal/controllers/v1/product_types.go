package v1

import (
	"github.com/atelier-luz/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ProductEditable struct {
	Name     string          `json:"name" example:"Álbum 30x30" default:""`
	Note     string          `json:"note" example:"Leather cover" default:""`
	Category string          `json:"category" example:"Álbuns" default:""`
	Price    decimal.Decimal `json:"price" example:"450"`
	Archived bool            `json:"archived" example:"false" default:"false"` // Archived products are hidden from the store front
}

// model returns the database resource for the API representation of the
// editable fields
func (editable ProductEditable) model() models.Product {
	return models.Product{
		Name:     editable.Name,
		Note:     editable.Note,
		Category: editable.Category,
		Price:    editable.Price,
		Archived: editable.Archived,
	}
}

type Product struct {
	models.DefaultModel
	ProductEditable
}

// newProduct returns the API v1 representation of the resource
func newProduct(model models.Product) Product {
	return Product{
		DefaultModel: model.DefaultModel,
		ProductEditable: ProductEditable{
			Name:     model.Name,
			Note:     model.Note,
			Category: model.Category,
			Price:    model.Price,
			Archived: model.Archived,
		},
	}
}

type ProductResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Product `json:"data"`                                                          // The product data, if the request was successful
}

type ProductListResponse struct {
	Data       []Product   `json:"data"`                                                          // List of products
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProductQueryFilter struct {
	Name     string `form:"name" filterField:"false"` // Glob pattern matched against the name
	Category string `form:"category"`
	Archived bool   `form:"archived"`
	Offset   uint   `form:"offset" filterField:"false"`
	Limit    int    `form:"limit" filterField:"false"`
}

// model converts the filter into a resource struct usable in a gorm Where.
func (f ProductQueryFilter) model() models.Product {
	return models.Product{
		Category: f.Category,
		Archived: f.Archived,
	}
}
