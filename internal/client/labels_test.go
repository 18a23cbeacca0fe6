package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

const labelListPayload = `{
	"data": [
		{"id": "campaigns", "type": "labels", "attributes": {"name": "Campaigns", "position": 0, "depth": 0, "path": ["campaigns"]}},
		{"id": "q3", "type": "labels", "attributes": {"name": "Q3", "position": 0, "depth": 1, "path": ["campaigns", "q3"]}},
		{"id": "assets", "type": "labels", "attributes": {"name": "Assets", "position": 1, "depth": 0, "path": ["assets"]}}
	],
	"meta": {"total_count": 3}
}`

func TestLabels_Tree(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brandfolders/bf-1/labels", r.URL.Path)
		writeJSON(t, w, http.StatusOK, labelListPayload)
	})

	roots, err := c.Labels().Tree(context.Background(), "bf-1")
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, "campaigns", roots[0].Label.ID)
	assert.Equal(t, "assets", roots[1].Label.ID)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, "Q3", roots[0].Children[0].Label.Name())
}

func TestLabels_Names(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, labelListPayload)
	})

	names, err := c.Labels().Names(context.Background(), "bf-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"campaigns": "Campaigns",
		"q3":        "Q3",
		"assets":    "Assets",
	}, names)
}

func TestLabels_Create(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/brandfolders/bf-1/labels", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, `{
			"data": {"id": "q4", "type": "labels", "attributes": {"name": "Q4"}}
		}`)
	})

	resource, err := c.Labels().Create(context.Background(), "bf-1", &brandfolder.LabelCreateRequest{
		Name:      "Q4",
		ParentKey: "campaigns",
	})
	require.NoError(t, err)
	assert.Equal(t, "q4", resource.ID)
}

func TestLabels_Update(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/labels/q4", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{
			"data": {"id": "q4", "type": "labels", "attributes": {"name": "Q4 2026"}}
		}`)
	})

	resource, err := c.Labels().Update(context.Background(), "q4", "Q4 2026")
	require.NoError(t, err)
	assert.Equal(t, "Q4 2026", resource.Name())
}

func TestLabels_Delete(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/labels/q4", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Labels().Delete(context.Background(), "q4")
	require.NoError(t, err)
}
