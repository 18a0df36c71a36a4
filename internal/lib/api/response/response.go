// Package response holds the payload shapes of the booking API: a plain
// error body, a message body, and a per-field validation body.
package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// FieldErrors maps a field name (batch elements use "<index>.<field>"
// keys) to every message produced for it.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

func (fe FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		fe[field] = append(fe[field], messages...)
	}
}

type ValidationResponse struct {
	Errors FieldErrors `json:"errors"`
}

func Err(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func Msg(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

func Validation(fe FieldErrors) ValidationResponse {
	return ValidationResponse{Errors: fe}
}
