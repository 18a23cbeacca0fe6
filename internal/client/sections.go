package client

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// SectionsClient implements brandfolder.SectionsClient.
type SectionsClient struct {
	pager
}

// NewSectionsClient creates a new SectionsClient.
func NewSectionsClient(httpClient *internalhttp.Client) *SectionsClient {
	return &SectionsClient{pager: pager{httpClient: httpClient}}
}

// ListForBrandfolder fetches one page of a brandfolder's sections.
func (c *SectionsClient) ListForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/sections", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing sections for brandfolder: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// Get retrieves a specific section.
func (c *SectionsClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, constants.APIPathSections+"/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting section: %w", err)
	}

	return resource, nil
}

// Create creates a section inside a brandfolder.
func (c *SectionsClient) Create(ctx context.Context, brandfolderKey string, request *brandfolder.SectionCreateRequest) (*brandfolder.Resource, error) {
	path := fmt.Sprintf("/brandfolders/%s/sections", brandfolderKey)

	page, err := c.postPage(ctx, path, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("creating section: %w", err)
	}

	return page.Resource(), nil
}
