package constants

import "time"

// API endpoint defaults.
const (
	// DefaultAPIEndpoint is the production API base URL.
	DefaultAPIEndpoint = "https://brandfolder.com/api/v4"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Pagination defaults.
const (
	// DefaultPageSize is the "per" value applied when a caller sets none.
	DefaultPageSize = 100

	// DefaultMaxPages caps the requests one aggregation may issue,
	// guarding against cyclic next_page chains.
	DefaultMaxPages = 100
)

// Retry defaults. The API contract is a single pass/fail outcome per
// call, so retries are off unless a consumer opts in.
const (
	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Cache defaults.
const (
	// DefaultCacheSize is the maximum entry count for the memory cache.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the lifetime of cached custom field key lookups.
	DefaultCacheTTL = 5 * time.Minute
)

// Buffer sizes.
const (
	// SmallBufferSize is used for page streaming channels.
	SmallBufferSize = 10
)

// API paths for top-level resources.
const (
	APIPathOrganizations = "/organizations"
	APIPathBrandfolders  = "/brandfolders"
	APIPathCollections   = "/collections"
	APIPathSections      = "/sections"
	APIPathAssets        = "/assets"
	APIPathAttachments   = "/attachments"
	APIPathLabels        = "/labels"
	APIPathInvitations   = "/invitations"
)
