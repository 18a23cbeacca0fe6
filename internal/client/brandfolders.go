package client

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// BrandfoldersClient implements brandfolder.BrandfoldersClient.
type BrandfoldersClient struct {
	pager
	opts *brandfolder.PaginationOptions
}

// NewBrandfoldersClient creates a new BrandfoldersClient.
func NewBrandfoldersClient(httpClient *internalhttp.Client, opts *brandfolder.PaginationOptions) *BrandfoldersClient {
	return &BrandfoldersClient{
		pager: pager{httpClient: httpClient},
		opts:  opts,
	}
}

// List fetches one page of brandfolders visible to the API key.
func (c *BrandfoldersClient) List(ctx context.Context, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	page, err := c.getPage(ctx, constants.APIPathBrandfolders, params)
	if err != nil {
		return nil, fmt.Errorf("listing brandfolders: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListAll fetches and merges every page of brandfolders.
func (c *BrandfoldersClient) ListAll(ctx context.Context, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	page, err := brandfolder.FetchAllPages(ctx, c, constants.APIPathBrandfolders, params, c.opts)
	if err != nil {
		return nil, fmt.Errorf("listing all brandfolders: %w", err)
	}

	return page, nil
}

// ListForOrganization fetches one page of an organization's brandfolders.
func (c *BrandfoldersClient) ListForOrganization(ctx context.Context, organizationKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/organizations/%s/brandfolders", organizationKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing brandfolders for organization: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// Get retrieves a specific brandfolder.
func (c *BrandfoldersClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, "/brandfolders/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting brandfolder: %w", err)
	}

	return resource, nil
}

// Create creates a brandfolder under an organization.
func (c *BrandfoldersClient) Create(ctx context.Context, organizationKey string, request *brandfolder.BrandfolderCreateRequest) (*brandfolder.Resource, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/organizations/%s/brandfolders", organizationKey)

	page, err := c.postPage(ctx, path, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("creating brandfolder: %w", err)
	}

	return page.Resource(), nil
}

// Update updates a brandfolder's attributes.
func (c *BrandfoldersClient) Update(ctx context.Context, key string, request *brandfolder.BrandfolderUpdateRequest) (*brandfolder.Resource, error) {
	resource, err := c.putResource(ctx, "/brandfolders/"+key, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("updating brandfolder: %w", err)
	}

	return resource, nil
}

// Delete deletes a brandfolder.
func (c *BrandfoldersClient) Delete(ctx context.Context, key string) error {
	err := c.delete(ctx, "/brandfolders/"+key)
	if err != nil {
		return fmt.Errorf("deleting brandfolder: %w", err)
	}

	return nil
}

// Search runs a search expression against a brandfolder's assets.
func (c *BrandfoldersClient) Search(ctx context.Context, key, query string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	searchParams := params.Clone().WithSearch(query)

	page, err := c.getPage(ctx, fmt.Sprintf("/brandfolders/%s/assets", key), searchParams)
	if err != nil {
		return nil, fmt.Errorf("searching brandfolder: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}
