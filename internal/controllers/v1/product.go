package v1

import (
	"net/http"

	"github.com/atelier-luz/backend/internal/httputil"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterProductRoutes registers the routes for products with
// the RouterGroup that is passed.
func RegisterProductRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProductList)
		r.GET("", GetProducts)
		r.POST("", CreateProduct)
	}

	// Product with ID
	{
		r.OPTIONS("/:id", OptionsProductDetail)
		r.GET("/:id", GetProduct)
		r.PATCH("/:id", UpdateProduct)
		r.DELETE("/:id", DeleteProduct)
	}
}

// OptionsProductList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Products
//	@Success		204
//	@Router			/v1/products [options]
func OptionsProductList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsProductDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Products
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/products/{id} [options]
func OptionsProductDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	_, ok := getProductResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateProduct creates a new product
//
//	@Summary		Create product
//	@Description	Creates a new store product
//	@Tags			Products
//	@Produce		json
//	@Success		201	{object}	ProductResponse
//	@Failure		400	{object}	ProductResponse
//	@Failure		500	{object}	ProductResponse
//	@Param			product	body		ProductEditable	true	"Product"
//	@Router			/v1/products [post]
func CreateProduct(c *gin.Context) {
	var editable ProductEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProductResponse{Error: &e})
		return
	}

	product := editable.model()
	if err := models.DB.Create(&product).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{Error: &e})
		return
	}

	data := newProduct(product)
	c.JSON(http.StatusCreated, ProductResponse{Data: &data})
}

// GetProducts returns a list of products matching the search parameters
//
//	@Summary		Get products
//	@Description	Returns a list of store products
//	@Tags			Products
//	@Produce		json
//	@Success		200	{object}	ProductListResponse
//	@Failure		400	{object}	ProductListResponse
//	@Failure		500	{object}	ProductListResponse
//	@Param			name		query	string	false	"Filter by name, supports globbing with *"
//	@Param			category	query	string	false	"Filter by category"
//	@Param			archived	query	bool	false	"Is the product archived?"
//	@Param			offset		query	uint	false	"The offset of the first Product returned. Defaults to 0."
//	@Param			limit		query	int		false	"Maximum number of Products to return. Defaults to 50."
//	@Router			/v1/products [get]
func GetProducts(c *gin.Context) {
	var filter ProductQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProductListResponse{Error: &e})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)
	filterModel := filter.model()

	var products []models.Product
	err := models.DB.
		Order("category ASC, name ASC").
		Where(&filterModel, queryFields...).
		Find(&products).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductListResponse{Error: &e})
		return
	}

	matching := make([]models.Product, 0, len(products))
	for _, product := range products {
		if slices.Contains(setFields, "Name") && !glob.Glob(filter.Name, product.Name) {
			continue
		}

		matching = append(matching, product)
	}

	// Set the defaults for pagination
	if !slices.Contains(setFields, "Limit") {
		filter.Limit = 50
	}

	total := int64(len(matching))

	low := int(filter.Offset)
	if low > len(matching) {
		low = len(matching)
	}

	high := len(matching)
	if filter.Limit >= 0 && low+filter.Limit < high {
		high = low + filter.Limit
	}

	data := make([]Product, 0, high-low)
	for _, product := range matching[low:high] {
		data = append(data, newProduct(product))
	}

	c.JSON(http.StatusOK, ProductListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetProduct returns a specific product
//
//	@Summary		Get product
//	@Description	Returns a specific store product
//	@Tags			Products
//	@Produce		json
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ProductResponse
//	@Failure		404	{object}	ProductResponse
//	@Failure		500	{object}	ProductResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/products/{id} [get]
func GetProduct(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProductResponse{Error: &e})
		return
	}

	var product models.Product
	err := models.DB.First(&product, &models.Product{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{Error: &e})
		return
	}

	data := newProduct(product)
	c.JSON(http.StatusOK, ProductResponse{Data: &data})
}

// UpdateProduct updates a product, selected by the ID parameter
//
//	@Summary		Update product
//	@Description	Updates an existing product. Only values to be updated need to be specified.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	ProductResponse
//	@Failure		400	{object}	ProductResponse
//	@Failure		404	{object}	ProductResponse
//	@Failure		500	{object}	ProductResponse
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			product	body		ProductEditable	true	"Product"
//	@Router			/v1/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProductResponse{Error: &e})
		return
	}

	product, ok := getProductResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProductEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProductResponse{Error: &e})
		return
	}

	var editable ProductEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ProductResponse{Error: &e})
		return
	}

	err = models.DB.Model(&product).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{Error: &e})
		return
	}

	data := newProduct(product)
	c.JSON(http.StatusOK, ProductResponse{Data: &data})
}

// DeleteProduct deletes a product
//
//	@Summary		Delete product
//	@Description	Deletes a store product
//	@Tags			Products
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	product, ok := getProductResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	if err := models.DB.Delete(&product).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// getProductResource verifies that the request URI is valid for the
// product and returns it.
func getProductResource(c *gin.Context, id uuid.UUID) (models.Product, bool) {
	if id == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{"no product ID specified"})
		return models.Product{}, false
	}

	var product models.Product
	err := models.DB.First(&product, &models.Product{DefaultModel: models.DefaultModel{ID: id}}).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return models.Product{}, false
	}

	return product, true
}
