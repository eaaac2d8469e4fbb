package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSession indicates no interview session is active.
	ErrNoSession = errors.New("no active interview session")

	// ErrAuthRequired indicates an authenticated call was attempted
	// without a usable credential.
	ErrAuthRequired = errors.New("authentication required")

	// ErrTokenAcquisition indicates the token endpoint itself failed.
	// Token failures never trigger the retry-on-401 policy.
	ErrTokenAcquisition = errors.New("token acquisition failed")
)

// ErrorFallbackMessage is used when an error body carries neither a
// message nor a detail field.
const ErrorFallbackMessage = "request could not be processed"

// APIError is a structured HTTP failure: a human-readable message, the
// response status, and the raw error body kept for diagnostics.
type APIError struct {
	Status    int
	Message   string
	Technical json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// apiErrorBody is the wire shape of a non-2xx response body.
type apiErrorBody struct {
	Message string          `json:"message"`
	Detail  json.RawMessage `json:"detail"`
}

// NewAPIError builds an APIError from a raw error body. The message is
// taken from a string "message" field, else a string "detail" field,
// else the fixed fallback. The body is retained verbatim.
func NewAPIError(status int, body []byte) *APIError {
	msg := ErrorFallbackMessage
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			msg = parsed.Message
		case len(parsed.Detail) > 0:
			var detail string
			if err := json.Unmarshal(parsed.Detail, &detail); err == nil && detail != "" {
				msg = detail
			}
		}
	}
	return &APIError{Status: status, Message: msg, Technical: body}
}

// IsNotFound checks if the error indicates a missing resource.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 404
	}
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 401
	}
	return false
}
