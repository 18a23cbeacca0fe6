package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

func TestAttachments_Get(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attachments/att-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{
			"data": {"id": "att-1", "type": "attachments", "attributes": {"filename": "logo.png"}}
		}`)
	})

	resource, err := c.Attachments().Get(context.Background(), "att-1", nil)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, "att-1", resource.ID)
	assert.Equal(t, "logo.png", resource.Attributes["filename"])
}

func TestAttachments_Update(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/attachments/att-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{
			"data": {"id": "att-1", "type": "attachments", "attributes": {"filename": "logo-v2.png"}}
		}`)
	})

	resource, err := c.Attachments().Update(context.Background(), "att-1", &brandfolder.AttachmentUpdateRequest{
		Filename: "logo-v2.png",
	})
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, "logo-v2.png", resource.Attributes["filename"])
}

func TestAttachments_Delete(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/attachments/att-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Attachments().Delete(context.Background(), "att-1")
	require.NoError(t, err)
}
