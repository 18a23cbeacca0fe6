package brandfolder_test

import (
	"encoding/json"
	"testing"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assetListPayload = `{
	"data": [
		{
			"id": "asset-1",
			"type": "assets",
			"attributes": {"name": "Logo"},
			"relationships": {
				"attachments": {
					"data": [
						{"id": "att-2", "type": "attachments"},
						{"id": "att-1", "type": "attachments"},
						{"id": "att-3", "type": "attachments"}
					]
				},
				"custom_field_values": {
					"data": [
						{"id": "cfv-1", "type": "custom_field_values"},
						{"id": "cfv-2", "type": "custom_field_values"},
						{"id": "cfv-3", "type": "custom_field_values"}
					]
				},
				"section": {
					"data": {"id": "sec-1", "type": "sections"}
				}
			}
		}
	],
	"included": [
		{"id": "att-1", "type": "attachments", "attributes": {"filename": "a.png", "position": 0}},
		{"id": "att-2", "type": "attachments", "attributes": {"filename": "b.png", "position": 2}},
		{"id": "att-3", "type": "attachments", "attributes": {"filename": "c.png"}},
		{"id": "cfv-1", "type": "custom_field_values", "attributes": {"key": "color", "value": "red"}},
		{"id": "cfv-2", "type": "custom_field_values", "attributes": {"key": "color", "value": "blue"}},
		{"id": "cfv-3", "type": "custom_field_values", "attributes": {"key": "season", "value": "fall"}},
		{"id": "sec-1", "type": "sections", "attributes": {"name": "Logos"}}
	],
	"meta": {"total_count": 1}
}`

func decodePage(t *testing.T, payload string) *brandfolder.Page {
	t.Helper()

	page := &brandfolder.Page{}
	require.NoError(t, json.Unmarshal([]byte(payload), page))

	return page
}

func TestNormalize_ResolvesRelationships(t *testing.T) {
	t.Parallel()

	page := decodePage(t, assetListPayload)
	page.Normalize(nil)

	require.Len(t, page.Data, 1)
	asset := page.Data[0]

	// The generic relationship resolves to attribute maps stamped with id
	section, ok := asset.Related["sections"]["sec-1"]
	require.True(t, ok)
	assert.Equal(t, "Logos", section["name"])
	assert.Equal(t, "sec-1", section["id"])

	// Relationships are consumed during normalization
	assert.Nil(t, asset.Relationships)
}

func TestNormalize_CollapsesCustomFields(t *testing.T) {
	t.Parallel()

	page := decodePage(t, assetListPayload)
	page.Normalize(map[string]string{"color": "key-color"})

	asset := page.Data[0]

	// Two values under one name promote the slot to a list
	assert.Equal(t, []interface{}{"red", "blue"}, asset.CustomFields["color"])
	assert.Equal(t, "fall", asset.CustomFields["season"])

	// Only resolvable names appear in the by-ID map
	assert.Equal(t, []interface{}{"red", "blue"}, asset.CustomFieldsByID["key-color"])
	assert.NotContains(t, asset.CustomFieldsByID, "season")
}

func TestNormalize_OrdersAttachmentsByPosition(t *testing.T) {
	t.Parallel()

	page := decodePage(t, assetListPayload)
	page.Normalize(nil)

	asset := page.Data[0]

	// att-1 has position 0, att-2 position 2, att-3 no position (sorts last)
	assert.Equal(t, []string{"att-1", "att-2", "att-3"}, asset.AttachmentIDs)
	assert.Equal(t, "b.png", asset.Related["attachments"]["att-2"]["filename"])
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	page := decodePage(t, assetListPayload)
	page.Normalize(nil)
	page.Normalize(nil)

	asset := page.Data[0]

	// Field values do not accumulate on the second pass
	assert.Equal(t, []interface{}{"red", "blue"}, asset.CustomFields["color"])
	assert.Len(t, asset.Related["attachments"], 3)
}

func TestNormalize_SkipsMissingReferences(t *testing.T) {
	t.Parallel()

	payload := `{
		"data": [
			{
				"id": "asset-1",
				"type": "assets",
				"attributes": {"name": "Logo"},
				"relationships": {
					"section": {"data": {"id": "ghost", "type": "sections"}}
				}
			}
		],
		"included": [
			{"id": "sec-1", "type": "sections", "attributes": {"name": "Logos"}}
		]
	}`

	page := decodePage(t, payload)
	page.Normalize(nil)

	asset := page.Data[0]
	assert.NotContains(t, asset.Related["sections"], "ghost")
	assert.Equal(t, "Logo", asset.Name())
}

func TestNormalize_NoIncludedIsNoOp(t *testing.T) {
	t.Parallel()

	payload := `{
		"data": [
			{
				"id": "asset-1",
				"type": "assets",
				"relationships": {
					"section": {"data": {"id": "sec-1", "type": "sections"}}
				}
			}
		]
	}`

	page := decodePage(t, payload)
	page.Normalize(nil)

	// Without an included table the relationships stay untouched
	asset := page.Data[0]
	require.Contains(t, asset.Relationships, "section")
	assert.Equal(t, "sec-1", asset.Relationships["section"].Refs[0].ID)
	assert.Nil(t, asset.Related)
}

func TestBuildIncludedIndex_Lookup(t *testing.T) {
	t.Parallel()

	index := brandfolder.BuildIncludedIndex([]brandfolder.Resource{
		{ID: "tag-1", Type: "tags", Attributes: map[string]interface{}{"name": "logo"}},
	})

	attributes, ok := index.Lookup(brandfolder.Ref{ID: "tag-1", Type: "tags"})
	require.True(t, ok)
	assert.Equal(t, "logo", attributes["name"])

	_, ok = index.Lookup(brandfolder.Ref{ID: "tag-2", Type: "tags"})
	assert.False(t, ok)

	_, ok = index.Lookup(brandfolder.Ref{ID: "tag-1", Type: "labels"})
	assert.False(t, ok)
}
