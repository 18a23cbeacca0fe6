package brandfolder_test

import (
	"encoding/json"
	"testing"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelationship_UnmarshalSingle(t *testing.T) {
	t.Parallel()

	var rel brandfolder.Relationship

	require.NoError(t, json.Unmarshal([]byte(`{"data": {"id": "sec-1", "type": "sections"}}`), &rel))
	require.Len(t, rel.Refs, 1)
	assert.Equal(t, brandfolder.Ref{ID: "sec-1", Type: "sections"}, rel.Refs[0])
}

func TestRelationship_UnmarshalArray(t *testing.T) {
	t.Parallel()

	var rel brandfolder.Relationship

	payload := `{"data": [{"id": "t-1", "type": "tags"}, {"id": "t-2", "type": "tags"}]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &rel))
	require.Len(t, rel.Refs, 2)
	assert.Equal(t, "t-2", rel.Refs[1].ID)
}

func TestRelationship_UnmarshalNull(t *testing.T) {
	t.Parallel()

	var rel brandfolder.Relationship

	require.NoError(t, json.Unmarshal([]byte(`{"data": null}`), &rel))
	assert.Empty(t, rel.Refs)
}

func TestRelationship_MarshalKeepsShape(t *testing.T) {
	t.Parallel()

	single := brandfolder.Relationship{Refs: []brandfolder.Ref{{ID: "sec-1", Type: "sections"}}}

	data, err := json.Marshal(single)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": {"id": "sec-1", "type": "sections"}}`, string(data))

	multi := brandfolder.Relationship{Refs: []brandfolder.Ref{
		{ID: "t-1", Type: "tags"},
		{ID: "t-2", Type: "tags"},
	}}

	data, err = json.Marshal(multi)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": [{"id": "t-1", "type": "tags"}, {"id": "t-2", "type": "tags"}]}`, string(data))
}

func TestPage_UnmarshalList(t *testing.T) {
	t.Parallel()

	payload := `{
		"data": [
			{"id": "bf-1", "type": "brandfolders", "attributes": {"name": "Acme"}},
			{"id": "bf-2", "type": "brandfolders", "attributes": {"name": "Globex"}}
		],
		"meta": {"next_page": 2, "total_count": 12}
	}`

	var page brandfolder.Page

	require.NoError(t, json.Unmarshal([]byte(payload), &page))
	require.Len(t, page.Data, 2)
	assert.Equal(t, "Acme", page.Data[0].Name())
	require.NotNil(t, page.Meta)
	require.NotNil(t, page.Meta.NextPage)
	assert.Equal(t, 2, *page.Meta.NextPage)
	assert.Equal(t, 12, *page.Meta.TotalCount)
}

func TestPage_UnmarshalSingle(t *testing.T) {
	t.Parallel()

	payload := `{"data": {"id": "bf-1", "type": "brandfolders", "attributes": {"name": "Acme"}}}`

	var page brandfolder.Page

	require.NoError(t, json.Unmarshal([]byte(payload), &page))
	require.Len(t, page.Data, 1)

	resource := page.Resource()
	require.NotNil(t, resource)
	assert.Equal(t, "bf-1", resource.ID)

	// A single-resource page re-encodes without the array wrapper
	data, err := json.Marshal(page)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))
}

func TestPage_UnmarshalEmptyData(t *testing.T) {
	t.Parallel()

	var page brandfolder.Page

	require.NoError(t, json.Unmarshal([]byte(`{"data": null}`), &page))
	assert.Empty(t, page.Data)
	assert.Nil(t, page.Resource())
}

func TestResource_Accessors(t *testing.T) {
	t.Parallel()

	resource := brandfolder.Resource{
		ID:   "asset-1",
		Type: "assets",
		Attributes: map[string]interface{}{
			"name":     "Logo",
			"position": float64(3),
		},
	}

	name, ok := resource.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Logo", name)

	_, ok = resource.String("position")
	assert.False(t, ok)

	position, ok := resource.Int("position")
	assert.True(t, ok)
	assert.Equal(t, 3, position)

	_, ok = resource.Int("name")
	assert.False(t, ok)

	assert.Equal(t, "Logo", resource.Name())
}
