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

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelope)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.PATCH("/:id", UpdateEnvelope)
		r.DELETE("/:id", DeleteEnvelope)
	}
}

// OptionsEnvelopeList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Envelopes
//	@Success		204
//	@Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsEnvelopeDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Envelopes
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	_, ok := getEnvelopeResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateEnvelope creates a new envelope
//
//	@Summary		Create envelope
//	@Description	Creates a new budget envelope
//	@Tags			Envelopes
//	@Produce		json
//	@Success		201	{object}	EnvelopeResponse
//	@Failure		400	{object}	EnvelopeResponse
//	@Failure		500	{object}	EnvelopeResponse
//	@Param			envelope	body		EnvelopeEditable	true	"Envelope"
//	@Router			/v1/envelopes [post]
func CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{Error: &e})
		return
	}

	envelope := editable.model()
	if err := models.DB.Create(&envelope).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged, ID: envelope.ID})

	data := newEnvelope(envelope)
	c.JSON(http.StatusCreated, EnvelopeResponse{Data: &data})
}

// GetEnvelopes returns a list of envelopes matching the search parameters
//
//	@Summary		Get envelopes
//	@Description	Returns a list of budget envelopes
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200	{object}	EnvelopeListResponse
//	@Failure		400	{object}	EnvelopeListResponse
//	@Failure		500	{object}	EnvelopeListResponse
//	@Param			name	query	string	false	"Filter by name, supports globbing with *"
//	@Param			offset	query	uint	false	"The offset of the first Envelope returned. Defaults to 0."
//	@Param			limit	query	int		false	"Maximum number of Envelopes to return. Defaults to 50."
//	@Router			/v1/envelopes [get]
func GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeListResponse{Error: &e})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var envelopes []models.Envelope
	err := models.DB.Order("name ASC").Find(&envelopes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{Error: &e})
		return
	}

	matching := make([]models.Envelope, 0, len(envelopes))
	for _, envelope := range envelopes {
		if slices.Contains(setFields, "Name") && !glob.Glob(filter.Name, envelope.Name) {
			continue
		}

		matching = append(matching, envelope)
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

	data := make([]Envelope, 0, high-low)
	for _, envelope := range matching[low:high] {
		data = append(data, newEnvelope(envelope))
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetEnvelope returns a specific envelope
//
//	@Summary		Get envelope
//	@Description	Returns a specific budget envelope
//	@Tags			Envelopes
//	@Produce		json
//	@Success		200	{object}	EnvelopeResponse
//	@Failure		400	{object}	EnvelopeResponse
//	@Failure		404	{object}	EnvelopeResponse
//	@Failure		500	{object}	EnvelopeResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{Error: &e})
		return
	}

	var envelope models.Envelope
	err := models.DB.First(&envelope, &models.Envelope{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	data := newEnvelope(envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// UpdateEnvelope updates an envelope, selected by the ID parameter
//
//	@Summary		Update envelope
//	@Description	Updates an existing envelope. Only values to be updated need to be specified. The spent amount cannot be set directly, it only changes through transactions.
//	@Tags			Envelopes
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	EnvelopeResponse
//	@Failure		400	{object}	EnvelopeResponse
//	@Failure		404	{object}	EnvelopeResponse
//	@Failure		500	{object}	EnvelopeResponse
//	@Param			id			path		string				true	"ID formatted as string"
//	@Param			envelope	body		EnvelopeEditable	true	"Envelope"
//	@Router			/v1/envelopes/{id} [patch]
func UpdateEnvelope(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{Error: &e})
		return
	}

	envelope, ok := getEnvelopeResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EnvelopeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{Error: &e})
		return
	}

	var editable EnvelopeEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{Error: &e})
		return
	}

	err = models.DB.Model(&envelope).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged, ID: envelope.ID})

	data := newEnvelope(envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// DeleteEnvelope deletes an envelope
//
//	@Summary		Delete envelope
//	@Description	Deletes a budget envelope
//	@Tags			Envelopes
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	envelope, ok := getEnvelopeResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	if err := models.DB.Delete(&envelope).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged, ID: envelope.ID})

	c.JSON(http.StatusNoContent, nil)
}

// getEnvelopeResource verifies that the request URI is valid for the
// envelope and returns it.
func getEnvelopeResource(c *gin.Context, id uuid.UUID) (models.Envelope, bool) {
	if id == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{"no envelope ID specified"})
		return models.Envelope{}, false
	}

	var envelope models.Envelope
	err := models.DB.First(&envelope, &models.Envelope{DefaultModel: models.DefaultModel{ID: id}}).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return models.Envelope{}, false
	}

	return envelope, true
}
