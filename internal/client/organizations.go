package client

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// OrganizationsClient implements brandfolder.OrganizationsClient.
type OrganizationsClient struct {
	pager
	opts *brandfolder.PaginationOptions
}

// NewOrganizationsClient creates a new OrganizationsClient.
func NewOrganizationsClient(httpClient *internalhttp.Client, opts *brandfolder.PaginationOptions) *OrganizationsClient {
	return &OrganizationsClient{
		pager: pager{httpClient: httpClient},
		opts:  opts,
	}
}

// List fetches one page of organizations.
func (c *OrganizationsClient) List(ctx context.Context, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	page, err := c.getPage(ctx, constants.APIPathOrganizations, params)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListAll fetches and merges every page of organizations.
func (c *OrganizationsClient) ListAll(ctx context.Context, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	page, err := brandfolder.FetchAllPages(ctx, c, constants.APIPathOrganizations, params, c.opts)
	if err != nil {
		return nil, fmt.Errorf("listing all organizations: %w", err)
	}

	return page, nil
}
