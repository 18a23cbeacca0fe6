// Package client implements the brandfolder.Client interface: one
// resource client per API resource family, all sharing one request
// executor and one lookup cache.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/orientier/brandfolder-go/internal/auth"
	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// Client implements the brandfolder.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	baseURL    string
	logger     brandfolder.Logger
	cache      brandfolder.Cache
	pageSize   int
	maxPages   int

	organizations   brandfolder.OrganizationsClient
	brandfolders    brandfolder.BrandfoldersClient
	collections     brandfolder.CollectionsClient
	sections        brandfolder.SectionsClient
	assets          brandfolder.AssetsClient
	attachments     brandfolder.AttachmentsClient
	labels          brandfolder.LabelsClient
	tags            brandfolder.TagsClient
	customFields    brandfolder.CustomFieldsClient
	invitations     brandfolder.InvitationsClient
	userPermissions brandfolder.UserPermissionsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *brandfolder.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, internalhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a new API client from config.
func New(config *brandfolder.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, brandfolder.ErrAPIKeyRequired
	}

	endpoint := config.APIEndpoint
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	tokenManager := auth.NewStaticTokenManager(config.APIKey)
	httpClient := internalhttp.NewClient(endpoint, tokenManager, createHTTPClientOptions(config)...)

	cache, err := brandfolder.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("creating lookup cache: %w", err)
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    endpoint,
		logger:     config.Logger,
		cache:      cache,
		pageSize:   config.PageSize,
		maxPages:   config.MaxPages,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewTestClient creates a client against a test server, without auth or
// caching surprises (memory cache, default limits).
func NewTestClient(baseURL string) *Client {
	client := &Client{
		httpClient: internalhttp.NewClient(baseURL, nil),
		baseURL:    baseURL,
		cache:      brandfolder.NewMemoryCache(constants.DefaultCacheSize),
	}

	client.initializeResourceClients()

	return client
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	opts := c.paginationOptions()

	customFields := NewCustomFieldsClient(c.httpClient, c.cache, opts)

	c.organizations = NewOrganizationsClient(c.httpClient, opts)
	c.brandfolders = NewBrandfoldersClient(c.httpClient, opts)
	c.collections = NewCollectionsClient(c.httpClient)
	c.sections = NewSectionsClient(c.httpClient)
	c.assets = NewAssetsClient(c.httpClient, customFields, opts)
	c.attachments = NewAttachmentsClient(c.httpClient)
	c.labels = NewLabelsClient(c.httpClient, opts)
	c.tags = NewTagsClient(c.httpClient, opts)
	c.customFields = customFields
	c.invitations = NewInvitationsClient(c.httpClient)
	c.userPermissions = NewUserPermissionsClient(c.httpClient)
}

// paginationOptions derives aggregation settings from the config.
func (c *Client) paginationOptions() *brandfolder.PaginationOptions {
	opts := brandfolder.DefaultPaginationOptions()

	if c.pageSize > 0 {
		opts.PageSize = c.pageSize
	}

	if c.maxPages > 0 {
		opts.MaxPages = c.maxPages
	}

	return opts
}

// Resource client accessors

// Organizations implements brandfolder.Client.Organizations.
func (c *Client) Organizations() brandfolder.OrganizationsClient {
	return c.organizations
}

// Brandfolders implements brandfolder.Client.Brandfolders.
func (c *Client) Brandfolders() brandfolder.BrandfoldersClient {
	return c.brandfolders
}

// Collections implements brandfolder.Client.Collections.
func (c *Client) Collections() brandfolder.CollectionsClient {
	return c.collections
}

// Sections implements brandfolder.Client.Sections.
func (c *Client) Sections() brandfolder.SectionsClient {
	return c.sections
}

// Assets implements brandfolder.Client.Assets.
func (c *Client) Assets() brandfolder.AssetsClient {
	return c.assets
}

// Attachments implements brandfolder.Client.Attachments.
func (c *Client) Attachments() brandfolder.AttachmentsClient {
	return c.attachments
}

// Labels implements brandfolder.Client.Labels.
func (c *Client) Labels() brandfolder.LabelsClient {
	return c.labels
}

// Tags implements brandfolder.Client.Tags.
func (c *Client) Tags() brandfolder.TagsClient {
	return c.tags
}

// CustomFields implements brandfolder.Client.CustomFields.
func (c *Client) CustomFields() brandfolder.CustomFieldsClient {
	return c.customFields
}

// Invitations implements brandfolder.Client.Invitations.
func (c *Client) Invitations() brandfolder.InvitationsClient {
	return c.invitations
}

// UserPermissions implements brandfolder.Client.UserPermissions.
func (c *Client) UserPermissions() brandfolder.UserPermissionsClient {
	return c.userPermissions
}

// loggerAdapter adapts brandfolder.Logger to the transport's Logger.
type loggerAdapter struct {
	logger brandfolder.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

// pager issues list calls and implements brandfolder.PageLister for the
// aggregation helpers.
type pager struct {
	httpClient *internalhttp.Client
}

// ListPage implements brandfolder.PageLister.
func (p pager) ListPage(ctx context.Context, path string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	return p.getPage(ctx, path, params)
}

// getPage issues one GET and decodes the page envelope. An empty 2xx body
// decodes as an empty page.
func (p pager) getPage(ctx context.Context, path string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := p.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	return decodePage(resp.Body)
}

// getResource fetches a single-resource page, normalizes it, and unwraps
// the primary entity.
func (p pager) getResource(ctx context.Context, path string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	page, err := p.getPage(ctx, path, params)
	if err != nil {
		return nil, err
	}

	page.Normalize(nil)

	return page.Resource(), nil
}

// postPage issues one POST and decodes the response page.
func (p pager) postPage(ctx context.Context, path string, body interface{}) (*brandfolder.Page, error) {
	resp, err := p.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	return decodePage(resp.Body)
}

// putResource issues one PUT and unwraps the updated entity.
func (p pager) putResource(ctx context.Context, path string, body interface{}) (*brandfolder.Resource, error) {
	resp, err := p.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, err
	}

	page, err := decodePage(resp.Body)
	if err != nil {
		return nil, err
	}

	page.Normalize(nil)

	return page.Resource(), nil
}

// delete issues one DELETE, discarding any body.
func (p pager) delete(ctx context.Context, path string) error {
	_, err := p.httpClient.Delete(ctx, path)

	return err
}

func decodePage(body []byte) (*brandfolder.Page, error) {
	page := &brandfolder.Page{}

	if len(body) == 0 {
		return page, nil
	}

	err := json.Unmarshal(body, page)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return page, nil
}

// attributesPayload is the {data: {attributes: ...}} write envelope.
type attributesPayload struct {
	Data attributesData `json:"data"`
}

type attributesData struct {
	Attributes interface{} `json:"attributes"`
}

func wrapAttributes(attributes interface{}) *attributesPayload {
	return &attributesPayload{Data: attributesData{Attributes: attributes}}
}
