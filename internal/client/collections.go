package client

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// CollectionsClient implements brandfolder.CollectionsClient.
type CollectionsClient struct {
	pager
}

// NewCollectionsClient creates a new CollectionsClient.
func NewCollectionsClient(httpClient *internalhttp.Client) *CollectionsClient {
	return &CollectionsClient{pager: pager{httpClient: httpClient}}
}

// List fetches one page of all collections visible to the API key.
func (c *CollectionsClient) List(ctx context.Context, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	page, err := c.getPage(ctx, constants.APIPathCollections, params)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListForBrandfolder fetches one page of a brandfolder's collections.
func (c *CollectionsClient) ListForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/collections", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing collections for brandfolder: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// Get retrieves a specific collection.
func (c *CollectionsClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, "/collections/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting collection: %w", err)
	}

	return resource, nil
}

// Create creates a collection inside a brandfolder.
func (c *CollectionsClient) Create(ctx context.Context, brandfolderKey string, request *brandfolder.CollectionCreateRequest) (*brandfolder.Resource, error) {
	path := fmt.Sprintf("/brandfolders/%s/collections", brandfolderKey)

	page, err := c.postPage(ctx, path, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("creating collection: %w", err)
	}

	return page.Resource(), nil
}

// Update updates a collection's attributes.
func (c *CollectionsClient) Update(ctx context.Context, key string, request *brandfolder.CollectionUpdateRequest) (*brandfolder.Resource, error) {
	resource, err := c.putResource(ctx, "/collections/"+key, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("updating collection: %w", err)
	}

	return resource, nil
}

// Delete deletes a collection.
func (c *CollectionsClient) Delete(ctx context.Context, key string) error {
	err := c.delete(ctx, "/collections/"+key)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	return nil
}
