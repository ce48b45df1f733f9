package httpservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/erraggy/commandable/cmderrors"
)

const (
	contentTypeJSON = "application/json"
	contentTypeYAML = "application/x-yaml"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// ViolationBody is one entry of the details of a validation error response.
type ViolationBody struct {
	Path     string `json:"path,omitempty"`
	Code     string `json:"code"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Message  string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if body == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(body)
}

func writeResult(w http.ResponseWriter, result any) error {
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	return writeJSON(w, http.StatusOK, result)
}

func writeError(w http.ResponseWriter, status int, message string, details any) error {
	return writeJSON(w, status, ErrorBody{Error: message, Details: details})
}

// StatusFor maps a dispatch error to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, cmderrors.ErrCommandNotFound):
		return http.StatusNotFound
	case errors.Is(err, cmderrors.ErrValidation), errors.Is(err, cmderrors.ErrTypeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorDetails returns the structured part of an error response, if any.
func errorDetails(err error) any {
	var vErr *cmderrors.ValidationError
	if errors.As(err, &vErr) {
		out := make([]ViolationBody, 0, len(vErr.Violations))
		for _, v := range vErr.Violations {
			out = append(out, ViolationBody(v))
		}
		return out
	}
	var tm *cmderrors.TypeMismatchError
	if errors.As(err, &tm) {
		return ViolationBody{
			Path:     tm.Path,
			Code:     cmderrors.CodeTypeMismatch,
			Expected: tm.Expected,
			Actual:   tm.Actual,
			Message:  tm.Error(),
		}
	}
	return nil
}
