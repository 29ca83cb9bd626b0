package v1

import (
	"net/http"
	"time"

	"github.com/atelier-luz/backend/internal/finance"
	"github.com/atelier-luz/backend/internal/httputil"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

type DashboardResponse struct {
	Error *string          `json:"error" example:"the specified period type is invalid"` // The error, if any occurred
	Data  *finance.Metrics `json:"data"`                                                 // The dashboard metrics, if the request was successful
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// OptionsDashboard returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Dashboard
//	@Success		204
//	@Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetDashboard returns the financial dashboard metrics
//
//	@Summary		Get dashboard
//	@Description	Returns the financial metrics for the requested reporting window, recomputed from all contracts and installments
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	DashboardResponse
//	@Failure		400	{object}	DashboardResponse
//	@Failure		500	{object}	DashboardResponse
//	@Param			type	query	string	false	"Reporting window: all, year, month or custom. Defaults to all."
//	@Param			start	query	string	false	"Custom window start date, inclusive"
//	@Param			end		query	string	false	"Custom window end date, inclusive"
//	@Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	var period finance.Period
	if err := c.Bind(&period); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &e})
		return
	}

	if period.Type == "" {
		period.Type = finance.PeriodAll
	}

	if !slices.Contains([]finance.PeriodType{finance.PeriodAll, finance.PeriodYear, finance.PeriodMonth, finance.PeriodCustom}, period.Type) {
		e := errPeriodTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &e})
		return
	}

	var contracts []models.Contract
	if err := models.DB.Find(&contracts).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	var installments []models.InvestmentInstallment
	if err := models.DB.Find(&installments).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &e})
		return
	}

	metrics := finance.ComputeMetrics(contracts, installments, period, time.Now())
	c.JSON(http.StatusOK, DashboardResponse{Data: &metrics})
}
