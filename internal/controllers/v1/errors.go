package v1

import (
	"errors"
	"net/http"

	"github.com/atelier-luz/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery    = errors.New("the month query parameter must be set in YYYY-MM format")
	errContractStatusInvalid = errors.New("the specified contract status is invalid")
	errOrderStatusInvalid    = errors.New("the specified order status is invalid")
	errPeriodTypeInvalid     = errors.New("the specified period type is invalid")
)
