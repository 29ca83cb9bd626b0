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

// RegisterInstallmentRoutes registers the routes for investment
// installments with the RouterGroup that is passed.
func RegisterInstallmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInstallmentList)
		r.GET("", GetInstallments)
		r.POST("", CreateInstallment)
	}

	// Installment with ID
	{
		r.OPTIONS("/:id", OptionsInstallmentDetail)
		r.GET("/:id", GetInstallment)
		r.PATCH("/:id", UpdateInstallment)
		r.DELETE("/:id", DeleteInstallment)
	}
}

// OptionsInstallmentList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Installments
//	@Success		204
//	@Router			/v1/installments [options]
func OptionsInstallmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsInstallmentDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Installments
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/installments/{id} [options]
func OptionsInstallmentDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	_, ok := getInstallmentResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateInstallment creates a new installment
//
//	@Summary		Create installment
//	@Description	Creates a new investment installment
//	@Tags			Installments
//	@Produce		json
//	@Success		201	{object}	InstallmentResponse
//	@Failure		400	{object}	InstallmentResponse
//	@Failure		500	{object}	InstallmentResponse
//	@Param			installment	body		InstallmentEditable	true	"Installment"
//	@Router			/v1/installments [post]
func CreateInstallment(c *gin.Context) {
	var editable InstallmentEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentResponse{Error: &e})
		return
	}

	installment := editable.model()
	if err := models.DB.Create(&installment).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged, ID: installment.ID})

	data := newInstallment(installment)
	c.JSON(http.StatusCreated, InstallmentResponse{Data: &data})
}

// GetInstallments returns a list of installments matching the search parameters
//
//	@Summary		Get installments
//	@Description	Returns a list of investment installments
//	@Tags			Installments
//	@Produce		json
//	@Success		200	{object}	InstallmentListResponse
//	@Failure		400	{object}	InstallmentListResponse
//	@Failure		500	{object}	InstallmentListResponse
//	@Param			note	query	string	false	"Filter by note, supports globbing with *"
//	@Param			offset	query	uint	false	"The offset of the first Installment returned. Defaults to 0."
//	@Param			limit	query	int		false	"Maximum number of Installments to return. Defaults to 50."
//	@Router			/v1/installments [get]
func GetInstallments(c *gin.Context) {
	var filter InstallmentQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentListResponse{Error: &e})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var installments []models.InvestmentInstallment
	err := models.DB.Order("due_date ASC, created_at DESC").Find(&installments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentListResponse{Error: &e})
		return
	}

	matching := make([]models.InvestmentInstallment, 0, len(installments))
	for _, installment := range installments {
		if slices.Contains(setFields, "Note") && !glob.Glob(filter.Note, installment.Note) {
			continue
		}

		matching = append(matching, installment)
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

	data := make([]Installment, 0, high-low)
	for _, installment := range matching[low:high] {
		data = append(data, newInstallment(installment))
	}

	c.JSON(http.StatusOK, InstallmentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetInstallment returns a specific installment
//
//	@Summary		Get installment
//	@Description	Returns a specific investment installment
//	@Tags			Installments
//	@Produce		json
//	@Success		200	{object}	InstallmentResponse
//	@Failure		400	{object}	InstallmentResponse
//	@Failure		404	{object}	InstallmentResponse
//	@Failure		500	{object}	InstallmentResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/installments/{id} [get]
func GetInstallment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentResponse{Error: &e})
		return
	}

	var installment models.InvestmentInstallment
	err := models.DB.First(&installment, &models.InvestmentInstallment{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{Error: &e})
		return
	}

	data := newInstallment(installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &data})
}

// UpdateInstallment updates an installment, selected by the ID parameter
//
//	@Summary		Update installment
//	@Description	Updates an existing installment. Only values to be updated need to be specified.
//	@Tags			Installments
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	InstallmentResponse
//	@Failure		400	{object}	InstallmentResponse
//	@Failure		404	{object}	InstallmentResponse
//	@Failure		500	{object}	InstallmentResponse
//	@Param			id			path		string				true	"ID formatted as string"
//	@Param			installment	body		InstallmentEditable	true	"Installment"
//	@Router			/v1/installments/{id} [patch]
func UpdateInstallment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentResponse{Error: &e})
		return
	}

	installment, ok := getInstallmentResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InstallmentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentResponse{Error: &e})
		return
	}

	var editable InstallmentEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, InstallmentResponse{Error: &e})
		return
	}

	err = models.DB.Model(&installment).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged, ID: installment.ID})

	data := newInstallment(installment)
	c.JSON(http.StatusOK, InstallmentResponse{Data: &data})
}

// DeleteInstallment deletes an installment
//
//	@Summary		Delete installment
//	@Description	Deletes an investment installment
//	@Tags			Installments
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/installments/{id} [delete]
func DeleteInstallment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	installment, ok := getInstallmentResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	if err := models.DB.Delete(&installment).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	events.Default.Publish(events.Event{Kind: events.BudgetChanged, ID: installment.ID})

	c.JSON(http.StatusNoContent, nil)
}

// getInstallmentResource verifies that the request URI is valid for the
// installment and returns it.
func getInstallmentResource(c *gin.Context, id uuid.UUID) (models.InvestmentInstallment, bool) {
	if id == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{"no installment ID specified"})
		return models.InvestmentInstallment{}, false
	}

	var installment models.InvestmentInstallment
	err := models.DB.First(&installment, &models.InvestmentInstallment{DefaultModel: models.DefaultModel{ID: id}}).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return models.InvestmentInstallment{}, false
	}

	return installment, true
}
