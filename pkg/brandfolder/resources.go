package brandfolder

import "fmt"

// Privacy values accepted for brandfolders and collections.
const (
	PrivacyPrivate = "private"
	PrivacyPublic  = "public"
	PrivacyStealth = "stealth"
)

// ValidPrivacy reports whether the value is in the accepted set. An empty
// value is valid: the server applies its default.
func ValidPrivacy(privacy string) bool {
	switch privacy {
	case "", PrivacyPrivate, PrivacyPublic, PrivacyStealth:
		return true
	default:
		return false
	}
}

// Permission levels accepted for invitations.
const (
	PermissionGuest        = "guest"
	PermissionCollaborator = "collaborator"
	PermissionAdmin        = "admin"
	PermissionOwner        = "owner"
)

// ValidPermissionLevel reports whether the level is in the accepted set.
func ValidPermissionLevel(level string) bool {
	switch level {
	case PermissionGuest, PermissionCollaborator, PermissionAdmin, PermissionOwner:
		return true
	default:
		return false
	}
}

// BrandfolderCreateRequest holds the attributes for a new brandfolder.
type BrandfolderCreateRequest struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	Privacy string `json:"privacy,omitempty"`
	Slug    string `json:"slug,omitempty"`
}

// Validate applies the privacy allow-list.
func (r *BrandfolderCreateRequest) Validate() error {
	if !ValidPrivacy(r.Privacy) {
		return fmt.Errorf("%w: %q", ErrInvalidPrivacy, r.Privacy)
	}

	return nil
}

// BrandfolderUpdateRequest holds mutable brandfolder attributes.
type BrandfolderUpdateRequest struct {
	Name    string `json:"name,omitempty"`
	Tagline string `json:"tagline,omitempty"`
}

// CollectionCreateRequest holds the attributes for a new collection.
type CollectionCreateRequest struct {
	Name    string `json:"name"`
	Tagline string `json:"tagline,omitempty"`
	Slug    string `json:"slug,omitempty"`
}

// CollectionUpdateRequest holds mutable collection attributes.
type CollectionUpdateRequest struct {
	Name    string `json:"name,omitempty"`
	Tagline string `json:"tagline,omitempty"`
}

// SectionCreateRequest holds the attributes for a new section.
type SectionCreateRequest struct {
	Name             string `json:"name"`
	DefaultAssetType string `json:"default_asset_type,omitempty"`
	Position         *int   `json:"position,omitempty"`
}

// AttachmentInput describes one attachment supplied with an asset.
type AttachmentInput struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// AssetCreateRequest describes a new asset placed into a section.
type AssetCreateRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Attachments []AttachmentInput `json:"attachments,omitempty"`

	// SectionKey routes the asset into a section; required by the API.
	SectionKey string `json:"-"`
}

// Validate checks the required fields.
func (r *AssetCreateRequest) Validate() error {
	if r.Name == "" {
		return ErrAssetNameRequired
	}

	if r.SectionKey == "" {
		return ErrSectionKeyRequired
	}

	return nil
}

// AssetUpdateRequest holds mutable asset attributes.
type AssetUpdateRequest struct {
	Name        string            `json:"name,omitempty"`
	Description string            `json:"description,omitempty"`
	Attachments []AttachmentInput `json:"attachments,omitempty"`
}

// AttachmentCreateRequest holds the attributes for a new attachment.
type AttachmentCreateRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// AttachmentUpdateRequest holds mutable attachment attributes.
type AttachmentUpdateRequest struct {
	URL      string `json:"url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Position *int   `json:"position,omitempty"`
}

// LabelCreateRequest holds the attributes for a new label. An empty
// ParentKey creates a top-level label.
type LabelCreateRequest struct {
	Name      string `json:"name"`
	ParentKey string `json:"parent_key,omitempty"`
}

// InvitationCreateRequest invites a user to an organization, brandfolder,
// or collection; exactly one scope key should be set.
type InvitationCreateRequest struct {
	Email           string `json:"email"`
	PermissionLevel string `json:"permission_level"`
	PersonalMessage string `json:"personal_message,omitempty"`

	OrganizationKey string `json:"-"`
	BrandfolderKey  string `json:"-"`
	CollectionKey   string `json:"-"`
}

// Validate checks the email and the permission allow-list.
func (r *InvitationCreateRequest) Validate() error {
	if r.Email == "" {
		return ErrEmailRequired
	}

	if !ValidPermissionLevel(r.PermissionLevel) {
		return fmt.Errorf("%w: %q", ErrInvalidPermissionLevel, r.PermissionLevel)
	}

	return nil
}

// CustomFieldValueInput sets one custom field value on one asset.
type CustomFieldValueInput struct {
	Value    interface{} `json:"value"`
	AssetKey string      `json:"-"`
}

// UnresolvedCustomField names a custom field that could not be applied and
// why.
type UnresolvedCustomField struct {
	Name   string
	Reason string
}

// CustomFieldsResult accounts for a name-based custom field mutation:
// every resolvable field is applied even when others fail to resolve.
type CustomFieldsResult struct {
	// Applied maps field name to the key ID the value was written under.
	Applied map[string]string

	// Unresolved lists the fields skipped because their names did not
	// resolve to a key ID, with an explanatory reason each.
	Unresolved []UnresolvedCustomField
}

// OK reports whether every requested field was applied.
func (r *CustomFieldsResult) OK() bool {
	return len(r.Unresolved) == 0
}
