// Package httperror defines the error body returned by all endpoints.
package httperror

type Error struct {
	Message string `json:"error" example:"you must specify a transaction ID"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}
