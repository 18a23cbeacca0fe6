package brandfolder

import (
	"context"
	"time"
)

// Client is the full SDK surface: one accessor per resource family.
type Client interface {
	Organizations() OrganizationsClient
	Brandfolders() BrandfoldersClient
	Collections() CollectionsClient
	Sections() SectionsClient
	Assets() AssetsClient
	Attachments() AttachmentsClient
	Labels() LabelsClient
	Tags() TagsClient
	CustomFields() CustomFieldsClient
	Invitations() InvitationsClient
	UserPermissions() UserPermissionsClient
}

// OrganizationsClient lists the organizations visible to the API key.
type OrganizationsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page, error)
	ListAll(ctx context.Context, params *QueryParams) (*Page, error)
}

// BrandfoldersClient manages brandfolders.
type BrandfoldersClient interface {
	List(ctx context.Context, params *QueryParams) (*Page, error)
	ListAll(ctx context.Context, params *QueryParams) (*Page, error)
	ListForOrganization(ctx context.Context, organizationKey string, params *QueryParams) (*Page, error)
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Create(ctx context.Context, organizationKey string, request *BrandfolderCreateRequest) (*Resource, error)
	Update(ctx context.Context, key string, request *BrandfolderUpdateRequest) (*Resource, error)
	Delete(ctx context.Context, key string) error
	Search(ctx context.Context, key, query string, params *QueryParams) (*Page, error)
}

// CollectionsClient manages collections.
type CollectionsClient interface {
	List(ctx context.Context, params *QueryParams) (*Page, error)
	ListForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Create(ctx context.Context, brandfolderKey string, request *CollectionCreateRequest) (*Resource, error)
	Update(ctx context.Context, key string, request *CollectionUpdateRequest) (*Resource, error)
	Delete(ctx context.Context, key string) error
}

// SectionsClient manages a brandfolder's sections.
type SectionsClient interface {
	ListForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Create(ctx context.Context, brandfolderKey string, request *SectionCreateRequest) (*Resource, error)
}

// AssetsClient manages assets and their relationships.
type AssetsClient interface {
	ListForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	ListAllForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	ListForCollection(ctx context.Context, collectionKey string, params *QueryParams) (*Page, error)
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Create(ctx context.Context, brandfolderKey string, request *AssetCreateRequest) (*Page, error)
	Update(ctx context.Context, key string, request *AssetUpdateRequest) (*Resource, error)
	Delete(ctx context.Context, key string) error
	ListAttachments(ctx context.Context, assetKey string, params *QueryParams) (*Page, error)
	AddTags(ctx context.Context, assetKey string, names []string) (*Page, error)
	RemoveTags(ctx context.Context, assetKey string, names []string) error
	SetCustomFields(ctx context.Context, brandfolderKey, assetKey string, fields map[string]interface{}) (*CustomFieldsResult, error)
}

// AttachmentsClient manages attachments.
type AttachmentsClient interface {
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Create(ctx context.Context, assetKey string, request *AttachmentCreateRequest) (*Resource, error)
	Update(ctx context.Context, key string, request *AttachmentUpdateRequest) (*Resource, error)
	Delete(ctx context.Context, key string) error
}

// LabelsClient manages a brandfolder's label hierarchy.
type LabelsClient interface {
	ListForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	ListAllForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Create(ctx context.Context, brandfolderKey string, request *LabelCreateRequest) (*Resource, error)
	Update(ctx context.Context, key, name string) (*Resource, error)
	Delete(ctx context.Context, key string) error
	Tree(ctx context.Context, brandfolderKey string) ([]*LabelNode, error)
	Names(ctx context.Context, brandfolderKey string) (map[string]string, error)
}

// TagsClient lists tags.
type TagsClient interface {
	ListForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	ListAllForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	ListForAsset(ctx context.Context, assetKey string, params *QueryParams) (*Page, error)
}

// CustomFieldsClient manages custom field keys and values.
type CustomFieldsClient interface {
	ListKeys(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	ListAllKeys(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	KeyIDsByName(ctx context.Context, brandfolderKey string) (map[string]string, error)
	CreateKeys(ctx context.Context, brandfolderKey string, names []string) (*Page, error)
	DeleteKey(ctx context.Context, keyID string) error
	AddValues(ctx context.Context, keyID string, values []CustomFieldValueInput) (*Page, error)
}

// InvitationsClient manages invitations.
type InvitationsClient interface {
	ListForOrganization(ctx context.Context, organizationKey string, params *QueryParams) (*Page, error)
	ListForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Create(ctx context.Context, request *InvitationCreateRequest) (*Resource, error)
	Delete(ctx context.Context, key string) error
}

// UserPermissionsClient inspects and revokes user permissions.
type UserPermissionsClient interface {
	ListForOrganization(ctx context.Context, organizationKey string, params *QueryParams) (*Page, error)
	ListForBrandfolder(ctx context.Context, brandfolderKey string, params *QueryParams) (*Page, error)
	ListForCollection(ctx context.Context, collectionKey string, params *QueryParams) (*Page, error)
	Get(ctx context.Context, key string, params *QueryParams) (*Resource, error)
	Delete(ctx context.Context, key string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a brandfolder.Client.
//
// Authentication is a static bearer API key; there is no token exchange or
// refresh flow. APIEndpoint defaults to the production v4 base URL and is
// normalized by bfclient.New (trailing slash trimmed, https:// added when
// no scheme is present).
type Config struct {
	// APIKey is the bearer token attached to every request. Required.
	APIKey string

	// APIEndpoint overrides the API base URL, mainly for testing.
	APIEndpoint string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout is the per-request timeout; context deadlines take
	// precedence.
	HTTPTimeout time.Duration

	// RetryMax enables opt-in retries for transient failures. The
	// default of 0 keeps the single pass/fail contract per call.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided. API keys are redacted from log output.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// Cache configures the lookup cache (custom field key resolution).
	// Nil selects an in-memory cache with defaults.
	Cache *CacheConfig

	// MaxPages overrides the aggregation circuit breaker.
	MaxPages int

	// PageSize overrides the default list page size.
	PageSize int
}
