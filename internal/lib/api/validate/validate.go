// Package validate turns validator results into the per-field message maps
// the API reports. Batch elements are validated one by one with an
// "<index>." prefix, so a malformed element is keyed "0.start_time".
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"spaceBooker/internal/lib/api/response"
)

// TimeLayout is the only accepted timestamp form. It keeps lexicographic
// and chronological order identical, which the conflict engine relies on.
const TimeLayout = "2006-01-02 15:04:05"

var vld = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates v and reports messages keyed by json field name with
// the given prefix ("" for single requests, "0." for batch element 0).
func Struct(v any, prefix string) response.FieldErrors {
	fe := response.FieldErrors{}

	err := vld.Struct(v)
	if err == nil {
		return fe
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		fe.Add(prefix+"request", "The request is invalid.")
		return fe
	}

	for _, fErr := range validateErrs {
		field := prefix + fErr.Field()

		switch fErr.Tag() {
		case "required":
			fe.Add(field, fmt.Sprintf("The %s field is required.", field))
		case "datetime":
			fe.Add(field, fmt.Sprintf("The %s field must match the format %s.", field, TimeLayout))
		default:
			fe.Add(field, fmt.Sprintf("The %s field is invalid.", field))
		}
	}

	return fe
}

// Window adds ordering errors for a start_time/end_time pair. A side that
// is absent is left to its required rule; a present side fails unless both
// timestamps parse and start is strictly before end.
func Window(fe response.FieldErrors, prefix, start, end string) {
	if parsesTime(start) && parsesTime(end) && start < end {
		return
	}

	if start != "" {
		fe.Add(prefix+"start_time",
			fmt.Sprintf("The %sstart_time field must be a date before %send_time.", prefix, prefix))
	}
	if end != "" {
		fe.Add(prefix+"end_time",
			fmt.Sprintf("The %send_time field must be a date after %sstart_time.", prefix, prefix))
	}
}

func parsesTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

// DecodeError maps a request body decode failure onto field errors, so a
// wrongly typed field reads like any other validation failure.
func DecodeError(err error) response.FieldErrors {
	fe := response.FieldErrors{}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fe.Add(typeErr.Field, fmt.Sprintf("The %s field must be an integer.", typeErr.Field))
		return fe
	}

	fe.Add("body", "The request body must be valid JSON.")

	return fe
}
