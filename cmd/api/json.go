package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json tag so validation errors use the same
	// names the client sent.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// envelope is the uniform response shape of every endpoint: status_code and
// message always, data on success, error on failure.
type envelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Error      any    `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string, details any) error {
	return writeJSON(w, status, &envelope{
		StatusCode: status,
		Message:    message,
		Error:      details,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, message string, data any) error {
	return writeJSON(w, status, &envelope{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// validationErrors flattens validator output into a field-keyed message map,
// e.g. {"amount": ["This field is required"]}.
func validationErrors(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["non_field_errors"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "This field is required"
		case "gt":
			msg = "Must be greater than " + fe.Param()
		case "len":
			msg = "Must be exactly " + fe.Param() + " characters"
		default:
			msg = "Invalid value"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
