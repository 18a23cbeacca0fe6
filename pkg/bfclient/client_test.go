package bfclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orientier/brandfolder-go/pkg/bfclient"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

func TestNew_NilConfig(t *testing.T) {
	t.Parallel()

	_, err := bfclient.New(nil)
	require.ErrorIs(t, err, brandfolder.ErrConfigRequired)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := bfclient.New(&brandfolder.Config{})
	require.ErrorIs(t, err, brandfolder.ErrAPIKeyRequired)
}

func TestNew_NormalizesEndpoint(t *testing.T) {
	t.Parallel()

	config := &brandfolder.Config{
		APIKey:      "key",
		APIEndpoint: "brandfolder.example.com/api/v4/",
	}

	_, err := bfclient.New(config)
	require.NoError(t, err)
	assert.Equal(t, "https://brandfolder.example.com/api/v4", config.APIEndpoint)
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	cli, err := bfclient.NewWithAPIKey("key")
	require.NoError(t, err)
	assert.NotNil(t, cli.Organizations())
	assert.NotNil(t, cli.Assets())
	assert.NotNil(t, cli.Labels())
}

func TestNewWithEndpoint_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"id": "org-1", "type": "organizations", "attributes": {"name": "Acme"}}]}`))
	}))
	defer server.Close()

	cli, err := bfclient.NewWithEndpoint("key", server.URL)
	require.NoError(t, err)

	page, err := cli.Organizations().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Acme", page.Data[0].Name())
}
