package v1

import (
	"net/http"
	"time"

	"github.com/atelier-luz/backend/internal/events"
	"github.com/atelier-luz/backend/internal/httputil"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterContractRoutes registers the routes for contracts with
// the RouterGroup that is passed.
func RegisterContractRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsContractList)
		r.GET("", GetContracts)
		r.POST("", CreateContract)
	}

	// Contract with ID
	{
		r.OPTIONS("/:id", OptionsContractDetail)
		r.GET("/:id", GetContract)
		r.PATCH("/:id", UpdateContract)
		r.DELETE("/:id", DeleteContract)
	}
}

// OptionsContractList returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Contracts
//	@Success		204
//	@Router			/v1/contracts [options]
func OptionsContractList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// OptionsContractDetail returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Contracts
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/contracts/{id} [options]
func OptionsContractDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	_, ok := getContractResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// CreateContract creates a new contract
//
//	@Summary		Create contract
//	@Description	Creates a new contract
//	@Tags			Contracts
//	@Produce		json
//	@Success		201	{object}	ContractResponse
//	@Failure		400	{object}	ContractResponse
//	@Failure		500	{object}	ContractResponse
//	@Param			contract	body		ContractEditable	true	"Contract"
//	@Router			/v1/contracts [post]
func CreateContract(c *gin.Context) {
	var editable ContractEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractResponse{Error: &e})
		return
	}

	if editable.Status != "" && !slices.Contains(models.ContractStatuses, editable.Status) {
		e := errContractStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, ContractResponse{Error: &e})
		return
	}

	contract := editable.model()
	if err := models.DB.Create(&contract).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.ContractsChanged, ID: contract.ID})

	data := newContract(contract)
	c.JSON(http.StatusCreated, ContractResponse{Data: &data})
}

// GetContracts returns a list of contracts matching the search parameters
//
//	@Summary		Get contracts
//	@Description	Returns a list of contracts
//	@Tags			Contracts
//	@Produce		json
//	@Success		200	{object}	ContractListResponse
//	@Failure		400	{object}	ContractListResponse
//	@Failure		500	{object}	ContractListResponse
//	@Param			clientName			query	string	false	"Filter by client name, supports globbing with *"
//	@Param			status				query	string	false	"Filter by status"
//	@Param			eventCompleted		query	bool	false	"Is the event completed?"
//	@Param			depositPaid			query	bool	false	"Is the deposit paid?"
//	@Param			finalPaymentPaid	query	bool	false	"Is the final payment paid?"
//	@Param			period				query	string	false	"Reporting window: all, year, month or custom"
//	@Param			start				query	string	false	"Custom window start date, inclusive"
//	@Param			end					query	string	false	"Custom window end date, inclusive"
//	@Param			offset				query	uint	false	"The offset of the first Contract returned. Defaults to 0."
//	@Param			limit				query	int		false	"Maximum number of Contracts to return. Defaults to 50."
//	@Router			/v1/contracts [get]
func GetContracts(c *gin.Context) {
	var filter ContractQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractListResponse{Error: &e})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractListResponse{Error: &e})
		return
	}

	period, err := filter.period()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractListResponse{Error: &e})
		return
	}

	var contracts []models.Contract
	err = models.DB.
		Order("event_date ASC, created_at DESC").
		Where(&filterModel, queryFields...).
		Find(&contracts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractListResponse{Error: &e})
		return
	}

	// The client name glob and the reporting window operate on derived
	// values, so they cannot be pushed into the database query.
	now := time.Now()
	matching := make([]models.Contract, 0, len(contracts))
	for _, contract := range contracts {
		if slices.Contains(setFields, "ClientName") && !glob.Glob(filter.ClientName, contract.ClientName) {
			continue
		}

		if !period.Matches(contract.EffectiveDateString(), now) {
			continue
		}

		matching = append(matching, contract)
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

	data := make([]Contract, 0, high-low)
	for _, contract := range matching[low:high] {
		data = append(data, newContract(contract))
	}

	c.JSON(http.StatusOK, ContractListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  filter.Limit,
		},
	})
}

// GetContract returns a specific contract
//
//	@Summary		Get contract
//	@Description	Returns a specific contract
//	@Tags			Contracts
//	@Produce		json
//	@Success		200	{object}	ContractResponse
//	@Failure		400	{object}	ContractResponse
//	@Failure		404	{object}	ContractResponse
//	@Failure		500	{object}	ContractResponse
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/contracts/{id} [get]
func GetContract(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractResponse{Error: &e})
		return
	}

	var contract models.Contract
	err := models.DB.First(&contract, &models.Contract{DefaultModel: models.DefaultModel{ID: uri.ID.UUID}}).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{Error: &e})
		return
	}

	data := newContract(contract)
	c.JSON(http.StatusOK, ContractResponse{Data: &data})
}

// UpdateContract updates a contract, selected by the ID parameter
//
//	@Summary		Update contract
//	@Description	Updates an existing contract. Only values to be updated need to be specified.
//	@Tags			Contracts
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	ContractResponse
//	@Failure		400	{object}	ContractResponse
//	@Failure		404	{object}	ContractResponse
//	@Failure		500	{object}	ContractResponse
//	@Param			id			path		string				true	"ID formatted as string"
//	@Param			contract	body		ContractEditable	true	"Contract"
//	@Router			/v1/contracts/{id} [patch]
func UpdateContract(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractResponse{Error: &e})
		return
	}

	contract, ok := getContractResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ContractEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractResponse{Error: &e})
		return
	}

	var editable ContractEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ContractResponse{Error: &e})
		return
	}

	if slices.Contains(updateFields, "Status") && editable.Status != "" && !slices.Contains(models.ContractStatuses, editable.Status) {
		e := errContractStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, ContractResponse{Error: &e})
		return
	}

	err = models.DB.Model(&contract).Select("", updateFields...).Updates(editable.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{Error: &e})
		return
	}

	events.Default.Publish(events.Event{Kind: events.ContractsChanged, ID: contract.ID})

	data := newContract(contract)
	c.JSON(http.StatusOK, ContractResponse{Data: &data})
}

// DeleteContract deletes a contract
//
//	@Summary		Delete contract
//	@Description	Deletes a contract
//	@Tags			Contracts
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			id	path		string	true	"ID formatted as string"
//	@Router			/v1/contracts/{id} [delete]
func DeleteContract(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	contract, ok := getContractResource(c, uri.ID.UUID)
	if !ok {
		return
	}

	if err := models.DB.Delete(&contract).Error; err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	events.Default.Publish(events.Event{Kind: events.ContractDeleted, ID: contract.ID})
	events.Default.Publish(events.Event{Kind: events.ContractsChanged, ID: contract.ID})

	c.JSON(http.StatusNoContent, nil)
}

// getContractResource verifies that the request URI is valid for the
// contract and returns it.
func getContractResource(c *gin.Context, id uuid.UUID) (models.Contract, bool) {
	if id == uuid.Nil {
		e := "no contract ID specified"
		c.JSON(http.StatusBadRequest, httpError{e})
		return models.Contract{}, false
	}

	var contract models.Contract
	err := models.DB.First(&contract, &models.Contract{DefaultModel: models.DefaultModel{ID: id}}).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return models.Contract{}, false
	}

	return contract, true
}
