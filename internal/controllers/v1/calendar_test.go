package v1_test

import (
	"net/http"

	v1 "github.com/atelier-luz/backend/internal/controllers/v1"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/test"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCalendarMonth() {
	_ = createTestContract(suite.T(), v1.ContractEditable{
		ClientName: "Ana Souza",
		EventDate:  "2024-06-15",
		EventTime:  "14:30",
		Services: models.ServiceLines{
			{Name: "Ensaio Gestante", Price: "R$ 1.000"},
		},
	})

	// A booking in another month must not show up
	_ = createTestContract(suite.T(), v1.ContractEditable{
		ClientName: "Beatriz Lima",
		EventDate:  "2024-07-20",
	})

	r := test.Request(suite.T(), http.MethodGet, "/v1/calendar?month=2024-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalendarResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	// June 2024 starts on a Saturday: six leading blanks, then 30 days
	require.Len(suite.T(), response.Data.Grid, 36)
	suite.Assert().Equal(0, response.Data.Grid[0].Day)
	suite.Assert().Equal(1, response.Data.Grid[6].Day)
	suite.Assert().Equal("2024-06-01", response.Data.Grid[6].Date)

	require.Contains(suite.T(), response.Data.Days, "2024-06-15")
	events := response.Data.Days["2024-06-15"]
	require.Len(suite.T(), events, 1)
	suite.Assert().Equal("Ana Souza", events[0].ClientName)
	suite.Assert().Equal("Ensaio Gestante", events[0].ServiceName)
	suite.Assert().Equal("14:30", events[0].Time)

	suite.Assert().NotContains(response.Data.Days, "2024-07-20")
}

func (suite *TestSuiteStandard) TestCalendarInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/calendar?month=June", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCalendarDefaultsToCurrentMonth() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/calendar", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalendarResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	suite.Assert().NotEmpty(response.Data.Grid)
}
