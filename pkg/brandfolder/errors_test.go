package brandfolder_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	withDetail := &brandfolder.APIError{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "brandfolder does not exist",
	}
	assert.Equal(t, "Not Found: brandfolder does not exist (status: 404)", withDetail.Error())

	bare := &brandfolder.APIError{
		Status: http.StatusUnauthorized,
		Title:  "Unauthorized",
	}
	assert.Equal(t, "Unauthorized (status: 401)", bare.Error())
}

func TestResponseError_Error(t *testing.T) {
	t.Parallel()

	empty := &brandfolder.ResponseError{StatusCode: http.StatusBadGateway}
	assert.Equal(t, "request failed with status 502", empty.Error())

	multiple := &brandfolder.ResponseError{
		StatusCode: http.StatusUnprocessableEntity,
		Errors: []brandfolder.APIError{
			{Status: 422, Title: "Invalid name"},
			{Status: 422, Title: "Invalid privacy"},
		},
	}
	assert.Contains(t, multiple.Error(), "multiple errors")
	assert.Contains(t, multiple.Error(), "Invalid privacy")
}

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	body := []byte(`{"errors": [{"status": "404", "title": "Not Found", "detail": "no such asset"}]}`)

	err := brandfolder.ParseResponseError(http.StatusNotFound, body)
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Len(t, err.Errors, 1)
	assert.Equal(t, "Not Found", err.FirstError().Title)
	assert.Equal(t, 404, err.FirstError().Status)
}

func TestParseResponseError_NonJSONBody(t *testing.T) {
	t.Parallel()

	err := brandfolder.ParseResponseError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
	assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	assert.Empty(t, err.Errors)
	assert.Equal(t, "request failed with status 502", err.Error())
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := &brandfolder.ResponseError{StatusCode: http.StatusNotFound}
	assert.True(t, brandfolder.IsNotFound(notFound))
	assert.False(t, brandfolder.IsUnauthorized(notFound))

	// Status helpers see through wrapping
	wrapped := fmt.Errorf("getting asset: %w", notFound)
	assert.True(t, brandfolder.IsNotFound(wrapped))

	unauthorized := &brandfolder.ResponseError{StatusCode: http.StatusUnauthorized}
	assert.True(t, brandfolder.IsUnauthorized(unauthorized))

	forbidden := &brandfolder.ResponseError{StatusCode: http.StatusForbidden}
	assert.True(t, brandfolder.IsForbidden(forbidden))

	unprocessable := &brandfolder.APIError{Status: http.StatusUnprocessableEntity, Title: "Invalid"}
	assert.True(t, brandfolder.IsUnprocessable(unprocessable))

	assert.False(t, brandfolder.IsNotFound(nil))
	assert.False(t, brandfolder.IsNotFound(errPageUnavailable))
}
