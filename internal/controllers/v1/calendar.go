package v1

import (
	"net/http"
	"time"

	"github.com/atelier-luz/backend/internal/calendar"
	"github.com/atelier-luz/backend/internal/httputil"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// CalendarData is the month view: the grid layout plus the expanded
// events of the month keyed by day.
type CalendarData struct {
	Month types.Month                 `json:"month" example:"2024-06"`
	Grid  []calendar.Cell             `json:"grid"`
	Days  map[string][]calendar.Event `json:"days"` // Events of the month, keyed by date string
}

type CalendarResponse struct {
	Error *string       `json:"error" example:"the month query parameter must be set in YYYY-MM format"` // The error, if any occurred
	Data  *CalendarData `json:"data"`                                                                    // The calendar data, if the request was successful
}

// RegisterCalendarRoutes registers the routes for the calendar with
// the RouterGroup that is passed.
func RegisterCalendarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalendar)
	r.GET("", GetCalendar)
}

// OptionsCalendar returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Calendar
//	@Success		204
//	@Router			/v1/calendar [options]
func OptionsCalendar(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetCalendar returns the month view for the calendar
//
//	@Summary		Get calendar
//	@Description	Returns the month grid and the contract events of the month, bucketed by day
//	@Tags			Calendar
//	@Produce		json
//	@Success		200	{object}	CalendarResponse
//	@Failure		400	{object}	CalendarResponse
//	@Failure		500	{object}	CalendarResponse
//	@Param			month	query	string	false	"The month in YYYY-MM format. Defaults to the current month."
//	@Router			/v1/calendar [get]
func GetCalendar(c *gin.Context) {
	now := time.Now()

	month := types.MonthOf(now)
	if raw, ok := c.GetQuery("month"); ok {
		var err error
		month, err = types.ParseMonth(raw)
		if err != nil {
			e := errMonthNotSetInQuery.Error()
			c.JSON(http.StatusBadRequest, CalendarResponse{Error: &e})
			return
		}
	}

	var contracts []models.Contract
	if err := models.DB.Find(&contracts).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), CalendarResponse{Error: &e})
		return
	}

	// Keep only the events that fall into the requested month. Events
	// with unparsable dates cannot be placed on a grid day.
	all := calendar.ExpandAll(contracts)
	inMonth := make([]calendar.Event, 0, len(all))
	for _, event := range all {
		day, err := types.ParseDay(event.Date)
		if err != nil {
			continue
		}

		if month.Contains(day) {
			inMonth = append(inMonth, event)
		}
	}

	data := CalendarData{
		Month: month,
		Grid:  calendar.Grid(month, now),
		Days:  calendar.Bucket(inMonth),
	}

	c.JSON(http.StatusOK, CalendarResponse{Data: &data})
}
