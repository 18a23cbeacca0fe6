package brandfolder

import (
	"fmt"
	"sort"
)

// TypeCustomFieldValues is the resource type holding a {key, value} pair
// attached to an asset. Values of this type are folded into the owning
// entity's CustomFields maps instead of the generic Related table.
const TypeCustomFieldValues = "custom_field_values"

// TypeAttachments is the resource type whose resolved entries get an
// explicit position ordering on the owning entity.
const TypeAttachments = "attachments"

// IncludedIndex maps resource type -> id -> attributes for one payload's
// included table. An entry exists only for resources that actually
// appeared in included; references to absent entries are skipped.
type IncludedIndex map[string]map[string]map[string]interface{}

// BuildIncludedIndex groups included resources by (type, id), keeping only
// their attributes.
func BuildIncludedIndex(included []Resource) IncludedIndex {
	index := make(IncludedIndex)

	for i := range included {
		resource := &included[i]

		byID, ok := index[resource.Type]
		if !ok {
			byID = make(map[string]map[string]interface{})
			index[resource.Type] = byID
		}

		byID[resource.ID] = resource.Attributes
	}

	return index
}

// Lookup resolves one reference, reporting whether it was present.
func (idx IncludedIndex) Lookup(ref Ref) (map[string]interface{}, bool) {
	byID, ok := idx[ref.Type]
	if !ok {
		return nil, false
	}

	attributes, ok := byID[ref.ID]

	return attributes, ok
}

// Normalize rewrites the page's primary entities so that every
// relationship resolvable from the included table becomes a directly
// usable attribute map on the entity. keyIDs optionally maps custom field
// names to their global key IDs; when nil the by-ID custom field map is
// simply not populated.
//
// A reference missing from included is skipped, never an error. Each
// entity's Relationships are consumed in the process, so running Normalize
// again is a no-op. Pages without included data are left untouched.
func (p *Page) Normalize(keyIDs map[string]string) {
	if p == nil || len(p.Included) == 0 {
		return
	}

	index := BuildIncludedIndex(p.Included)

	for i := range p.Data {
		normalizeEntity(&p.Data[i], index, keyIDs)
	}
}

func normalizeEntity(entity *Resource, index IncludedIndex, keyIDs map[string]string) {
	for _, relationship := range entity.Relationships {
		for _, ref := range relationship.Refs {
			attributes, ok := index.Lookup(ref)
			if !ok {
				continue
			}

			if ref.Type == TypeCustomFieldValues {
				attachCustomField(entity, attributes, keyIDs)
			} else {
				attachRelated(entity, ref, attributes)
			}
		}
	}

	// Relationships are consumed: this keeps Normalize idempotent and
	// custom field values from accumulating twice.
	entity.Relationships = nil

	orderAttachments(entity)
}

// attachRelated copies the resolved attributes, stamped with their id,
// into the entity's per-type map.
func attachRelated(entity *Resource, ref Ref, attributes map[string]interface{}) {
	if entity.Related == nil {
		entity.Related = make(map[string]map[string]map[string]interface{})
	}

	byID, ok := entity.Related[ref.Type]
	if !ok {
		byID = make(map[string]map[string]interface{})
		entity.Related[ref.Type] = byID
	}

	stamped := make(map[string]interface{}, len(attributes)+1)
	for key, value := range attributes {
		stamped[key] = value
	}

	stamped["id"] = ref.ID

	byID[ref.ID] = stamped
}

// attachCustomField accumulates one custom field value under the field's
// human name and, when resolvable, its global key ID. A second value under
// an occupied key promotes the slot to a list.
func attachCustomField(entity *Resource, attributes map[string]interface{}, keyIDs map[string]string) {
	name, ok := attributes["key"].(string)
	if !ok {
		return
	}

	value := attributes["value"]

	if entity.CustomFields == nil {
		entity.CustomFields = make(map[string]interface{})
	}

	entity.CustomFields[name] = appendFieldValue(entity.CustomFields[name], value)

	keyID, ok := keyIDs[name]
	if !ok {
		return
	}

	if entity.CustomFieldsByID == nil {
		entity.CustomFieldsByID = make(map[string]interface{})
	}

	entity.CustomFieldsByID[keyID] = appendFieldValue(entity.CustomFieldsByID[keyID], value)
}

// appendFieldValue keeps a lone value scalar and promotes to a list when a
// second value arrives for the same key.
func appendFieldValue(existing, value interface{}) interface{} {
	if existing == nil {
		return value
	}

	if list, ok := existing.([]interface{}); ok {
		return append(list, value)
	}

	return []interface{}{existing, value}
}

// orderAttachments records the entity's resolved attachment IDs sorted by
// their position attribute. Attachments without a position sort last;
// ties fall back to ID order.
func orderAttachments(entity *Resource) {
	attachments, ok := entity.Related[TypeAttachments]
	if !ok || len(attachments) == 0 {
		return
	}

	ids := make([]string, 0, len(attachments))
	for id := range attachments {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		left, right := ids[i], ids[j]

		cmp := comparePositions(attachments[left]["position"], attachments[right]["position"])
		if cmp != 0 {
			return cmp < 0
		}

		return left < right
	})

	entity.AttachmentIDs = ids
}

// comparePositions orders two position values: numbers numerically,
// anything else by its string form, absent values last.
func comparePositions(left, right interface{}) int {
	if left == nil && right == nil {
		return 0
	}

	if left == nil {
		return 1
	}

	if right == nil {
		return -1
	}

	leftNum, leftOK := left.(float64)
	rightNum, rightOK := right.(float64)

	if leftOK && rightOK {
		switch {
		case leftNum < rightNum:
			return -1
		case leftNum > rightNum:
			return 1
		default:
			return 0
		}
	}

	leftStr := fmt.Sprint(left)
	rightStr := fmt.Sprint(right)

	switch {
	case leftStr < rightStr:
		return -1
	case leftStr > rightStr:
		return 1
	default:
		return 0
	}
}
