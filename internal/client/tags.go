package client

import (
	"context"
	"fmt"

	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// TagsClient implements brandfolder.TagsClient.
type TagsClient struct {
	pager
	opts *brandfolder.PaginationOptions
}

// NewTagsClient creates a new TagsClient.
func NewTagsClient(httpClient *internalhttp.Client, opts *brandfolder.PaginationOptions) *TagsClient {
	return &TagsClient{
		pager: pager{httpClient: httpClient},
		opts:  opts,
	}
}

// ListForBrandfolder fetches one page of a brandfolder's tags.
func (c *TagsClient) ListForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/tags", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing tags for brandfolder: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListAllForBrandfolder fetches and merges every page of a brandfolder's tags.
func (c *TagsClient) ListAllForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/tags", brandfolderKey)

	page, err := brandfolder.FetchAllPages(ctx, c, path, params, c.opts)
	if err != nil {
		return nil, fmt.Errorf("listing all tags for brandfolder: %w", err)
	}

	return page, nil
}

// ListForAsset fetches one page of an asset's tags.
func (c *TagsClient) ListForAsset(ctx context.Context, assetKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/assets/%s/tags", assetKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing tags for asset: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}
