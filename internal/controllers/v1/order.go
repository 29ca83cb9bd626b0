package v1

import (
	"net/http"

	"github.com/atelier-luz/backend/internal/events"
	"github.com/atelier-luz/backend/internal/httputil"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterOrderRoutes registers the routes for orders with
// the RouterGroup that is passed.
func RegisterOrderRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsOrderList)
		r.GET("", GetOrders)
		r.POST("", CreateOrder)
	}

	// Order with ID
	{
		r.OPTIONS("/:id", OptionsOrderDetail)
		r.GET("/:id", GetOrder)
		r.PATCH("/:id", UpdateOrder)
		r.DELETE("/:id", DeleteOrder)
	}
}

// OptionsOrderList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Orders
//	@Success		204
//	@Router			/v1/orders [options]
func OptionsOrderList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsOrderDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Orders
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/orders/{id} [options]
func OptionsOrderDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	_, ok := getOrderResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateOrder creates a new order
//
//	@Summary		Create order
//	@Description	Creates a new photo-selection order
//	@Tags			Orders
//	@Produce		json
//	@Success		201	{object}	OrderResponse
//	@Failure		400	{object}	OrderResponse
//	@Failure		500	{object}	OrderResponse
//	@Param			order	body		OrderEditable	true	"Order"
//	@Router			/v1/orders [post]
func CreateOrder(c *gin.Context) {
	var editable OrderEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	if editable.Status != "" && !slices.Contains([]models.OrderStatus{models.OrderOpen, models.OrderSubmitted, models.OrderFulfilled}, editable.Status) {
		e := errOrderStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	order := editable.model()
	if err := models.DB.Create(&order).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.OrdersChanged, ID: order.ID})

	data := newOrder(order)
	c.JSON(http.StatusCreated, OrderResponse{Data: &data})
}

// GetOrders returns a list of orders matching the search parameters
//
//	@Summary		Get orders
//	@Description	Returns a list of photo-selection orders
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	OrderListResponse
//	@Failure		400	{object}	OrderListResponse
//	@Failure		500	{object}	OrderListResponse
//	@Param			clientName	query	string	false	"Filter by client name, supports globbing with *"
//	@Param			status		query	string	false	"Filter by status"
//	@Param			contract	query	string	false	"Filter by contract ID"
//	@Param			offset		query	uint	false	"The offset of the first Order returned. Defaults to 0."
//	@Param			limit		query	int		false	"Maximum number of Orders to return. Defaults to 50."
//	@Router			/v1/orders [get]
func GetOrders(c *gin.Context) {
	var filter OrderQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderListResponse{Error: &e})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderListResponse{Error: &e})
		return
	}

	var orders []models.Order
	err = models.DB.
		Order("created_at DESC").
		Where(&filterModel).
		Find(&orders).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderListResponse{Error: &e})
		return
	}

	matching := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if slices.Contains(setFields, "ClientName") && !glob.Glob(filter.ClientName, order.ClientName) {
			continue
		}

		matching = append(matching, order)
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

	data := make([]Order, 0, high-low)
	for _, order := range matching[low:high] {
		data = append(data, newOrder(order))
	}

	c.JSON(http.StatusOK, OrderListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetOrder returns a specific order
//
//	@Summary		Get order
//	@Description	Returns a specific photo-selection order
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{object}	OrderResponse
//	@Failure		400	{object}	OrderResponse
//	@Failure		404	{object}	OrderResponse
//	@Failure		500	{object}	OrderResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/orders/{id} [get]
func GetOrder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	var order models.Order
	err := models.DB.First(&order, &models.Order{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	data := newOrder(order)
	c.JSON(http.StatusOK, OrderResponse{Data: &data})
}

// UpdateOrder updates an order, selected by the ID parameter
//
//	@Summary		Update order
//	@Description	Updates an existing order. Only values to be updated need to be specified.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	OrderResponse
//	@Failure		400	{object}	OrderResponse
//	@Failure		404	{object}	OrderResponse
//	@Failure		500	{object}	OrderResponse
//	@Param			id		path		string			true	"ID formatted as string"
//	@Param			order	body		OrderEditable	true	"Order"
//	@Router			/v1/orders/{id} [patch]
func UpdateOrder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	order, ok := getOrderResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, OrderEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	var editable OrderEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	if slices.Contains(updateFields, "Status") && editable.Status != "" && !slices.Contains([]models.OrderStatus{models.OrderOpen, models.OrderSubmitted, models.OrderFulfilled}, editable.Status) {
		e := errOrderStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, OrderResponse{Error: &e})
		return
	}

	err = models.DB.Model(&order).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OrderResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.OrdersChanged, ID: order.ID})

	data := newOrder(order)
	c.JSON(http.StatusOK, OrderResponse{Data: &data})
}

// DeleteOrder deletes an order
//
//	@Summary		Delete order
//	@Description	Deletes a photo-selection order
//	@Tags			Orders
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	order, ok := getOrderResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	if err := models.DB.Delete(&order).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	events.Default.Publish(events.Event{Kind: events.OrdersChanged, ID: order.ID})

	c.JSON(http.StatusNoContent, nil)
}

// getOrderResource verifies that the request URI is valid for the
// order and returns it.
func getOrderResource(c *gin.Context, id uuid.UUID) (models.Order, bool) {
	if id == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{"no order ID specified"})
		return models.Order{}, false
	}

	var order models.Order
	err := models.DB.First(&order, &models.Order{DefaultModel: models.DefaultModel{ID: id}}).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return models.Order{}, false
	}

	return order, true
}
