package brandfolder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ref is a {type, id} pointer into a payload's data or included tables.
type Ref struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Relationship holds the data member of a JSON:API relationship. The wire
// value may be a single reference or an array of them; both decode into
// Refs so downstream code handles one shape.
type Relationship struct {
	Refs []Ref
}

// UnmarshalJSON accepts {"data": {...}}, {"data": [...]}, and {"data": null}.
func (r *Relationship) UnmarshalJSON(data []byte) error {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return fmt.Errorf("decoding relationship: %w", err)
	}

	raw := bytes.TrimSpace(envelope.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '[' {
		var refs []Ref

		err = json.Unmarshal(raw, &refs)
		if err != nil {
			return fmt.Errorf("decoding relationship references: %w", err)
		}

		r.Refs = refs

		return nil
	}

	var ref Ref

	err = json.Unmarshal(raw, &ref)
	if err != nil {
		return fmt.Errorf("decoding relationship reference: %w", err)
	}

	r.Refs = []Ref{ref}

	return nil
}

// MarshalJSON re-emits a single reference without the array wrapper so that
// round-tripped payloads keep their original shape where possible.
func (r Relationship) MarshalJSON() ([]byte, error) {
	var envelope struct {
		Data interface{} `json:"data"`
	}

	switch len(r.Refs) {
	case 0:
		envelope.Data = nil
	case 1:
		envelope.Data = r.Refs[0]
	default:
		envelope.Data = r.Refs
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encoding relationship: %w", err)
	}

	return data, nil
}

// Resource is one JSON:API resource: an opaque attribute map plus optional
// relationships. Received resources are snapshots; the SDK never mutates
// server state through them.
//
// Related, CustomFields, CustomFieldsByID, and AttachmentIDs are populated
// by Page.Normalize and are not part of the wire format.
type Resource struct {
	ID            string                  `json:"id"`
	Type          string                  `json:"type"`
	Attributes    map[string]interface{}  `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`

	// Related maps resource type -> id -> resolved attributes (stamped
	// with the id) for every relationship resolvable from the payload's
	// included table.
	Related map[string]map[string]map[string]interface{} `json:"-"`

	// CustomFields maps a custom field's human name to its value. Two
	// values arriving under the same name promote the slot to a list.
	CustomFields map[string]interface{} `json:"-"`

	// CustomFieldsByID carries the same values keyed by the field's
	// global key ID, when a name->ID mapping was supplied.
	CustomFieldsByID map[string]interface{} `json:"-"`

	// AttachmentIDs lists resolved attachment IDs ordered by their
	// position attribute. Attachments without a position sort last.
	AttachmentIDs []string `json:"-"`
}

// String returns the named attribute as a string. The second return is
// false when the attribute is absent or not a string.
func (r *Resource) String(key string) (string, bool) {
	value, ok := r.Attributes[key].(string)

	return value, ok
}

// Int returns the named attribute as an int. JSON numbers decode as
// float64, so the value is converted.
func (r *Resource) Int(key string) (int, bool) {
	value, ok := r.Attributes[key].(float64)
	if !ok {
		return 0, false
	}

	return int(value), true
}

// Name returns the conventional name attribute, empty when absent.
func (r *Resource) Name() string {
	name, _ := r.String("name")

	return name
}

// Meta carries the pagination metadata of a list response. NextPage is nil
// on the final page.
type Meta struct {
	NextPage   *int `json:"next_page,omitempty"`
	PrevPage   *int `json:"prev_page,omitempty"`
	TotalCount *int `json:"total_count,omitempty"`
}

// Page is one response envelope: primary data (single resource or list),
// side-loaded included resources, and pagination metadata. Aggregated
// pages produced by FetchAllPages additionally carry Truncated.
type Page struct {
	Data     []Resource `json:"-"`
	Included []Resource `json:"included,omitempty"`
	Meta     *Meta      `json:"meta,omitempty"`

	// singular records that the wire payload held a single resource
	// rather than an array, so Resource() and re-encoding keep the shape.
	singular bool

	// Truncated is set by FetchAllPages when aggregation stopped at the
	// page cap rather than at the server's last page.
	Truncated bool `json:"-"`
}

type pageEnvelope struct {
	Data     json.RawMessage `json:"data"`
	Included []Resource      `json:"included,omitempty"`
	Meta     *Meta           `json:"meta,omitempty"`
}

// UnmarshalJSON accepts both a single resource and a resource array in the
// data member, normalizing to a slice.
func (p *Page) UnmarshalJSON(data []byte) error {
	var envelope pageEnvelope

	err := json.Unmarshal(data, &envelope)
	if err != nil {
		return fmt.Errorf("decoding page: %w", err)
	}

	p.Included = envelope.Included
	p.Meta = envelope.Meta

	raw := bytes.TrimSpace(envelope.Data)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if raw[0] == '[' {
		err = json.Unmarshal(raw, &p.Data)
		if err != nil {
			return fmt.Errorf("decoding page data: %w", err)
		}

		return nil
	}

	var resource Resource

	err = json.Unmarshal(raw, &resource)
	if err != nil {
		return fmt.Errorf("decoding page data: %w", err)
	}

	p.Data = []Resource{resource}
	p.singular = true

	return nil
}

// MarshalJSON restores the single-resource shape for pages that decoded one.
func (p Page) MarshalJSON() ([]byte, error) {
	envelope := struct {
		Data     interface{} `json:"data"`
		Included []Resource  `json:"included,omitempty"`
		Meta     *Meta       `json:"meta,omitempty"`
	}{
		Included: p.Included,
		Meta:     p.Meta,
	}

	if p.singular && len(p.Data) == 1 {
		envelope.Data = p.Data[0]
	} else {
		envelope.Data = p.Data
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encoding page: %w", err)
	}

	return data, nil
}

// Resource returns the page's single primary resource, or nil when the
// page is empty or holds a list.
func (p *Page) Resource() *Resource {
	if len(p.Data) == 0 {
		return nil
	}

	return &p.Data[0]
}
