package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var ErrRequestBodyEmpty = errors.New("the request body must not be empty")

// BindData binds the JSON body of the request to the struct passed in.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	}

	return nil
}

// GetBodyFields returns a slice of strings with the field names of the
// resource passed in that are set in the request body.
//
// The body is copied so that it can still be bound afterwards.
func GetBodyFields(c *gin.Context, resource any) ([]any, error) {
	// Copy the body to be able to use it multiple times
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	// Parse the body into a map to have all fields available
	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return []any{}, errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	}

	var bodyFields []any
	// Add all parameters set in the body to the bodyFields
	// This is used to determine which fields are updated in the database
	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := jsonName(val.Type().Field(i).Tag.Get("json"))

		// If the request Body has the field, add it to the return value
		if _, ok := mapBody[param]; ok {
			bodyFields = append(bodyFields, field)
		}
	}

	return bodyFields, nil
}

// jsonName strips options like ",omitempty" from a json struct tag.
func jsonName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

// GetURLFields checks which query parameters are set and returns them in
// two forms.
//
// queryFields contains all field names that can be used directly in a gorm
// Where statement as argument to specify the fields filtered on. As gorm
// uses any as type for the Where statement, we cannot use a []string type
// here.
//
// setFields returns a []string with all field names set in the query
// parameters. This can be useful to filter for zero values without
// defining them as pointer fields in gorm.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField allows to specify if the field is used to filter
		// resources directly or if it is a meta field that is processed by
		// explicit logic outside of GetURLFields
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			// All fields are added to setFields
			setFields = append(setFields, field)

			// If the field is a filterField (true by default), add it to the queryFields
			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}

	return queryFields, setFields
}
