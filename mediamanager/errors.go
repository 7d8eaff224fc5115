package mediamanager

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors returned by the media management client.
var (
	// ErrInvalidArgument is returned when a request is rejected before any
	// network call is made (bad method, missing URL, bad parameter value).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrHTTP is the base error for any 4xx/5xx response. All of the more
	// specific HTTP errors below also match ErrHTTP via errors.Is.
	ErrHTTP = errors.New("API request failed")

	// ErrBadRequest indicates an HTTP 400 response.
	ErrBadRequest = errors.New("bad request")

	// ErrForbidden indicates an HTTP 403 response.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates an HTTP 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrTransport indicates a network-level failure (connection refused,
	// DNS failure, timeout) as opposed to an HTTP error status.
	ErrTransport = errors.New("transport error")

	// ErrDecode indicates a successful status whose body was not valid JSON.
	ErrDecode = errors.New("response body is not valid JSON")

	// ErrAmbiguousCourse is returned by FindOrCreateCourse when more than one
	// course matches an LTI context that should identify exactly one.
	ErrAmbiguousCourse = errors.New("multiple courses match LTI context")
)

// APIError represents an HTTP error response from the API. The response body
// is kept verbatim as detail.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("API error: status %d: %s", e.StatusCode, e.Body)
}

// Is maps status codes onto the sentinel errors so callers can use errors.Is
// without inspecting status codes themselves.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrHTTP:
		return true
	case ErrBadRequest:
		return e.StatusCode == http.StatusBadRequest
	case ErrForbidden:
		return e.StatusCode == http.StatusForbidden
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// IsBadRequest checks if the error indicates a malformed request.
func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

// IsForbidden checks if the error indicates an authorization failure.
func (e *APIError) IsForbidden() bool {
	return e.StatusCode == http.StatusForbidden
}

// IsNotFound checks if the error indicates a not found response.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
