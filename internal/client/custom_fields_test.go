package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomFields_KeyIDsByName(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/brandfolders/bf-1/custom_field_keys", r.URL.Path)
		writeJSON(t, w, http.StatusOK, keyListPayload)
	})

	keyIDs, err := c.CustomFields().KeyIDsByName(context.Background(), "bf-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"color":  "key-color",
		"season": "key-season",
	}, keyIDs)
}

func TestCustomFields_KeyIDsByName_CachesLookup(t *testing.T) {
	t.Parallel()

	var listings int

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		listings++

		writeJSON(t, w, http.StatusOK, keyListPayload)
	})

	ctx := context.Background()

	_, err := c.CustomFields().KeyIDsByName(ctx, "bf-1")
	require.NoError(t, err)

	keyIDs, err := c.CustomFields().KeyIDsByName(ctx, "bf-1")
	require.NoError(t, err)
	assert.Equal(t, "key-color", keyIDs["color"])

	// The second resolution was served from the cache
	assert.Equal(t, 1, listings)
}

func TestCustomFields_CreateKeysInvalidatesLookup(t *testing.T) {
	t.Parallel()

	var listings int

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			writeJSON(t, w, http.StatusCreated, `{"data": [
				{"id": "key-region", "type": "custom_field_keys", "attributes": {"name": "region"}}
			]}`)

			return
		}

		listings++

		writeJSON(t, w, http.StatusOK, keyListPayload)
	})

	ctx := context.Background()

	_, err := c.CustomFields().KeyIDsByName(ctx, "bf-1")
	require.NoError(t, err)

	_, err = c.CustomFields().CreateKeys(ctx, "bf-1", []string{"region"})
	require.NoError(t, err)

	// Key creation dropped the cached mapping, so the next lookup refetches
	_, err = c.CustomFields().KeyIDsByName(ctx, "bf-1")
	require.NoError(t, err)
	assert.Equal(t, 2, listings)
}

func TestCustomFields_DeleteKey(t *testing.T) {
	t.Parallel()

	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/custom_field_keys/key-color", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.CustomFields().DeleteKey(context.Background(), "key-color"))
}
