package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

func TestSections_ListForBrandfolder(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brandfolders/bf-1/sections", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{
			"data": [{"id": "sec-1", "type": "sections", "attributes": {"name": "Logos"}}]
		}`)
	})

	page, err := c.Sections().ListForBrandfolder(context.Background(), "bf-1", nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Logos", page.Data[0].Name())
}

func TestSections_Get(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sections/sec-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{
			"data": {"id": "sec-1", "type": "sections", "attributes": {"name": "Logos"}}
		}`)
	})

	resource, err := c.Sections().Get(context.Background(), "sec-1", nil)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, "sec-1", resource.ID)
	assert.Equal(t, "Logos", resource.Name())
}

func TestSections_Create(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/brandfolders/bf-1/sections", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, `{
			"data": {"id": "sec-9", "type": "sections", "attributes": {"name": "Video"}}
		}`)
	})

	resource, err := c.Sections().Create(context.Background(), "bf-1", &brandfolder.SectionCreateRequest{
		Name: "Video",
	})
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, "sec-9", resource.ID)
}
