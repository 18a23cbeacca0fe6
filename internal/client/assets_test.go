package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientier/brandfolder-go/internal/client"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

const assetPagePayload = `{
	"data": [
		{
			"id": "asset-1",
			"type": "assets",
			"attributes": {"name": "Logo"},
			"relationships": {
				"custom_field_values": {
					"data": [{"id": "cfv-1", "type": "custom_field_values"}]
				}
			}
		}
	],
	"included": [
		{"id": "cfv-1", "type": "custom_field_values", "attributes": {"key": "color", "value": "red"}}
	],
	"meta": {"total_count": 1}
}`

const keyListPayload = `{
	"data": [
		{"id": "key-color", "type": "custom_field_keys", "attributes": {"name": "color"}},
		{"id": "key-season", "type": "custom_field_keys", "attributes": {"name": "season"}}
	],
	"meta": {"total_count": 2}
}`

func TestAssets_ListForBrandfolder(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brandfolders/bf-1/assets", r.URL.Path)
		writeJSON(t, w, http.StatusOK, assetPagePayload)
	})

	page, err := c.Assets().ListForBrandfolder(context.Background(), "bf-1", nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	// Custom field values collapse by name even without a key lookup
	assert.Equal(t, "red", page.Data[0].CustomFields["color"])
	assert.Empty(t, page.Data[0].CustomFieldsByID)
}

func TestAssets_ListForBrandfolder_ResolvesKeyIDs(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/brandfolders/bf-1/custom_field_keys":
			writeJSON(t, w, http.StatusOK, keyListPayload)
		case "/brandfolders/bf-1/assets":
			assert.Equal(t, "custom_fields", r.URL.Query().Get("include"))
			writeJSON(t, w, http.StatusOK, assetPagePayload)
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	})

	params := brandfolder.NewQueryParams().WithInclude("custom_fields")

	page, err := c.Assets().ListForBrandfolder(context.Background(), "bf-1", params)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	// With include=custom_fields the key lookup also populates the by-ID map
	assert.Equal(t, "red", page.Data[0].CustomFields["color"])
	assert.Equal(t, "red", page.Data[0].CustomFieldsByID["key-color"])
}

func TestAssets_ListAllForBrandfolder(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/brandfolders/bf-1/assets", r.URL.Path)

		switch r.URL.Query().Get("page") {
		case "1":
			writeJSON(t, w, http.StatusOK, `{
				"data": [{"id": "asset-1", "type": "assets"}],
				"meta": {"next_page": 2}
			}`)
		default:
			writeJSON(t, w, http.StatusOK, `{
				"data": [{"id": "asset-2", "type": "assets"}],
				"meta": {}
			}`)
		}
	})

	page, err := c.Assets().ListAllForBrandfolder(context.Background(), "bf-1", nil)
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
}

func TestAssets_Create(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/brandfolders/bf-1/assets", r.URL.Path)

		var payload struct {
			Data struct {
				Attributes []brandfolder.AssetCreateRequest `json:"attributes"`
			} `json:"data"`
			SectionKey string `json:"section_key"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sec-1", payload.SectionKey)
		require.Len(t, payload.Data.Attributes, 1)
		assert.Equal(t, "Logo", payload.Data.Attributes[0].Name)

		writeJSON(t, w, http.StatusCreated, `{"data": [{"id": "asset-9", "type": "assets"}]}`)
	})

	page, err := c.Assets().Create(context.Background(), "bf-1", &brandfolder.AssetCreateRequest{
		Name:       "Logo",
		SectionKey: "sec-1",
		Attachments: []brandfolder.AttachmentInput{
			{URL: "https://cdn.example.com/logo.png", Filename: "logo.png"},
		},
	})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "asset-9", page.Data[0].ID)
}

func TestAssets_Get(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets/asset-1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{
			"data": {"id": "asset-1", "type": "assets", "attributes": {"name": "Logo"}}
		}`)
	})

	resource, err := c.Assets().Get(context.Background(), "asset-1", nil)
	require.NoError(t, err)
	require.NotNil(t, resource)
	assert.Equal(t, "asset-1", resource.ID)
	assert.Equal(t, "Logo", resource.Name())
}

func TestAssets_Delete(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/assets/asset-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Assets().Delete(context.Background(), "asset-1")
	require.NoError(t, err)
}

func TestAssets_CreateValidation(t *testing.T) {
	t.Parallel()

	c := client.NewTestClient("http://unused.invalid")

	_, err := c.Assets().Create(context.Background(), "bf-1", &brandfolder.AssetCreateRequest{Name: "Logo"})
	require.ErrorIs(t, err, brandfolder.ErrSectionKeyRequired)

	_, err = c.Assets().Create(context.Background(), "bf-1", &brandfolder.AssetCreateRequest{SectionKey: "sec-1"})
	require.ErrorIs(t, err, brandfolder.ErrAssetNameRequired)
}

func TestAssets_AddTags(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/assets/asset-1/tags", r.URL.Path)

		var payload struct {
			Data struct {
				Attributes []struct {
					Name string `json:"name"`
				} `json:"attributes"`
			} `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Len(t, payload.Data.Attributes, 2)
		assert.Equal(t, "logo", payload.Data.Attributes[0].Name)

		writeJSON(t, w, http.StatusOK, `{"data": [
			{"id": "tag-1", "type": "tags", "attributes": {"name": "logo"}},
			{"id": "tag-2", "type": "tags", "attributes": {"name": "brand"}}
		]}`)
	})

	page, err := c.Assets().AddTags(context.Background(), "asset-1", []string{"logo", "brand"})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
}

func TestAssets_RemoveTags(t *testing.T) {
	t.Parallel()

	var deleted []string

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/assets/asset-1/tags", r.URL.Path)

			// The matching tag lives on the second page
			if r.URL.Query().Get("page") == "2" {
				writeJSON(t, w, http.StatusOK, `{
					"data": [{"id": "tag-2", "type": "tags", "attributes": {"name": "sunset"}}],
					"meta": {"next_page": null}
				}`)

				return
			}

			writeJSON(t, w, http.StatusOK, `{
				"data": [{"id": "tag-1", "type": "tags", "attributes": {"name": "logo"}}],
				"meta": {"next_page": 2}
			}`)
		case http.MethodDelete:
			deleted = append(deleted, r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}
	})

	// "draft" matches no tag on the asset and is ignored
	err := c.Assets().RemoveTags(context.Background(), "asset-1", []string{"sunset", "draft"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/tags/tag-2"}, deleted)
}

func TestAssets_SetCustomFields(t *testing.T) {
	t.Parallel()

	var valuePosts []string

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/brandfolders/bf-1/custom_field_keys":
			writeJSON(t, w, http.StatusOK, keyListPayload)
		case r.Method == http.MethodPost:
			valuePosts = append(valuePosts, r.URL.Path)
			writeJSON(t, w, http.StatusOK, `{"data": []}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	result, err := c.Assets().SetCustomFields(context.Background(), "bf-1", "asset-1", map[string]interface{}{
		"color":  "red",
		"season": "fall",
	})
	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, map[string]string{"color": "key-color", "season": "key-season"}, result.Applied)

	// Application order is deterministic (sorted by field name)
	assert.Equal(t, []string{
		"/custom_field_keys/key-color/custom_field_values",
		"/custom_field_keys/key-season/custom_field_values",
	}, valuePosts)
}

func TestAssets_SetCustomFields_PartialFailure(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/brandfolders/bf-1/custom_field_keys":
			writeJSON(t, w, http.StatusOK, keyListPayload)
		case r.Method == http.MethodPost:
			writeJSON(t, w, http.StatusOK, `{"data": []}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	result, err := c.Assets().SetCustomFields(context.Background(), "bf-1", "asset-1", map[string]interface{}{
		"color":   "red",
		"unknown": "value",
	})

	// The resolvable field was still applied; the unresolved one is reported
	require.ErrorIs(t, err, brandfolder.ErrUnresolvedCustomFields)
	require.NotNil(t, result)
	assert.False(t, result.OK())
	assert.Equal(t, map[string]string{"color": "key-color"}, result.Applied)
	require.Len(t, result.Unresolved, 1)
	assert.Equal(t, "unknown", result.Unresolved[0].Name)
}

func TestAssets_ListAttachments(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets/asset-1/attachments", r.URL.Path)
		writeJSON(t, w, http.StatusOK, `{
			"data": [
				{"id": "att-1", "type": "attachments", "attributes": {"filename": "a.png", "position": 0}}
			]
		}`)
	})

	page, err := c.Assets().ListAttachments(context.Background(), "asset-1", nil)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
}
