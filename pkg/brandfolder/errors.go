package brandfolder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents one error object from the API's error envelope.
type APIError struct {
	Status int    `json:"status,string"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.Title, e.Detail, e.Status)
	}

	return fmt.Sprintf("%s (status: %d)", e.Title, e.Status)
}

// ResponseError represents the error response from the API.
type ResponseError struct {
	StatusCode int        `json:"-"`
	Errors     []APIError `json:"errors"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	messages := make([]string, 0, len(e.Errors))
	for i := range e.Errors {
		messages = append(messages, e.Errors[i].Error())
	}

	return "multiple errors: " + strings.Join(messages, "; ")
}

// FirstError returns the first error or nil.
func (e *ResponseError) FirstError() *APIError {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}

	return nil
}

// ParseResponseError parses an error response body, falling back to a bare
// status-only error when the body is not the expected envelope.
func ParseResponseError(statusCode int, body []byte) *ResponseError {
	errResp := &ResponseError{StatusCode: statusCode}

	if len(body) > 0 {
		// Best effort: a non-JSON error body still yields a usable error
		_ = json.Unmarshal(body, errResp)
	}

	return errResp
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsUnprocessable checks if the error is a validation error.
func IsUnprocessable(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, status int) bool {
	errResp := &ResponseError{}
	if errors.As(err, &errResp) {
		if errResp.StatusCode == status {
			return true
		}

		first := errResp.FirstError()
		if first != nil {
			return first.Status == status
		}
	}

	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Status == status
	}

	return false
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired           = errors.New("config is required")
	ErrAPIKeyRequired           = errors.New("API key is required")
	ErrAPIEndpointRequired      = errors.New("API endpoint is required")
	ErrInvalidPrivacy           = errors.New("invalid privacy value")
	ErrInvalidPermissionLevel   = errors.New("invalid permission level")
	ErrUnresolvedCustomFields   = errors.New("unresolved custom field names")
	ErrNoMoreItems              = errors.New("no more items")
	ErrBrandfolderKeyRequired   = errors.New("brandfolder key is required")
	ErrSectionKeyRequired       = errors.New("section key is required")
	ErrAssetNameRequired        = errors.New("asset name is required")
	ErrEmailRequired            = errors.New("email is required")
	ErrInvitationScopeRequired  = errors.New("invitation requires an organization, brandfolder, or collection key")
	ErrCacheDisabled            = errors.New("cache disabled")
	ErrCacheKeyNotFound         = errors.New("key not found")
	ErrCacheEntryExpired        = errors.New("entry expired")
	ErrNATSConfigRequired       = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType     = errors.New("unsupported cache type")
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
)
