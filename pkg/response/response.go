// Package response defines the uniform envelope returned by every
// onboarding API endpoint: {"success": true, "data": ...} on success, a
// generic {"success": false, "message": ...} body on failure. The one
// exception is the care-request status update family, which forwards the
// upstream status code and remaps the upstream field-error list; see
// FieldErrors.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// Envelope is the standard success body.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorEnvelope is the generic failure body.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FieldErrorEnvelope carries the remapped upstream field-error list for
// endpoints that forward structured Station validation failures.
type FieldErrorEnvelope struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// Success wraps data in the standard envelope.
func Success(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

// SuccessOnly returns an envelope with no data payload.
func SuccessOnly() Envelope {
	return Envelope{Success: true}
}

// Error builds the generic failure body for an error.
func Error(err error) ErrorEnvelope {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return ErrorEnvelope{Success: false, Message: msg}
}

// StationError is returned by the station client when the upstream
// responds with a non-2xx status. It keeps the upstream status code and,
// when the body carried an {"errors": {field: [messages]}} object, the
// per-field messages.
type StationError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string][]string
}

func (e *StationError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("station request failed: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("station request failed: %d", e.StatusCode)
}

// AsStationError unwraps err into a *StationError if one is in the chain.
func AsStationError(err error) (*StationError, bool) {
	var se *StationError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// FieldErrors flattens the upstream field-error map into the
// client-facing errors array, "field message" per entry, in stable field
// order.
func (e *StationError) Flatten() []string {
	if len(e.FieldErrors) == 0 {
		return []string{}
	}
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var out []string
	for _, f := range fields {
		for _, msg := range e.FieldErrors[f] {
			out = append(out, fmt.Sprintf("%s %s", f, msg))
		}
	}
	return out
}

// StatusOf returns the HTTP status to surface for err: the upstream code
// for StationErrors, 500 otherwise.
func StatusOf(err error) int {
	if se, ok := AsStationError(err); ok && se.StatusCode > 0 {
		return se.StatusCode
	}
	return http.StatusInternalServerError
}
