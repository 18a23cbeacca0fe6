package client

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// LabelsClient implements brandfolder.LabelsClient.
type LabelsClient struct {
	pager
	opts *brandfolder.PaginationOptions
}

// NewLabelsClient creates a new LabelsClient.
func NewLabelsClient(httpClient *internalhttp.Client, opts *brandfolder.PaginationOptions) *LabelsClient {
	return &LabelsClient{
		pager: pager{httpClient: httpClient},
		opts:  opts,
	}
}

// ListForBrandfolder fetches one page of a brandfolder's labels.
func (c *LabelsClient) ListForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/labels", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing labels for brandfolder: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListAllForBrandfolder fetches and merges every page of a brandfolder's labels.
func (c *LabelsClient) ListAllForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/labels", brandfolderKey)

	page, err := brandfolder.FetchAllPages(ctx, c, path, params, c.opts)
	if err != nil {
		return nil, fmt.Errorf("listing all labels for brandfolder: %w", err)
	}

	return page, nil
}

// Tree fetches every label in the brandfolder and assembles them into a
// hierarchy, returning the top-level nodes.
func (c *LabelsClient) Tree(ctx context.Context, brandfolderKey string) ([]*brandfolder.LabelNode, error) {
	page, err := c.ListAllForBrandfolder(ctx, brandfolderKey, nil)
	if err != nil {
		return nil, fmt.Errorf("building label tree: %w", err)
	}

	return brandfolder.BuildLabelTree(page.Data), nil
}

// Names fetches every label in the brandfolder and returns an ID-to-name
// lookup map.
func (c *LabelsClient) Names(ctx context.Context, brandfolderKey string) (map[string]string, error) {
	page, err := c.ListAllForBrandfolder(ctx, brandfolderKey, nil)
	if err != nil {
		return nil, fmt.Errorf("listing label names: %w", err)
	}

	return brandfolder.LabelNames(page.Data), nil
}

// Get retrieves a specific label.
func (c *LabelsClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, constants.APIPathLabels+"/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting label: %w", err)
	}

	return resource, nil
}

// Create creates a label, optionally nested under a parent.
func (c *LabelsClient) Create(ctx context.Context, brandfolderKey string, request *brandfolder.LabelCreateRequest) (*brandfolder.Resource, error) {
	path := fmt.Sprintf("/brandfolders/%s/labels", brandfolderKey)

	page, err := c.postPage(ctx, path, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	return page.Resource(), nil
}

// Update renames a label.
func (c *LabelsClient) Update(ctx context.Context, key, name string) (*brandfolder.Resource, error) {
	resource, err := c.putResource(ctx, constants.APIPathLabels+"/"+key, wrapAttributes(map[string]string{"name": name}))
	if err != nil {
		return nil, fmt.Errorf("updating label: %w", err)
	}

	return resource, nil
}

// Delete deletes a label. Sublabels are removed by the service along
// with it.
func (c *LabelsClient) Delete(ctx context.Context, key string) error {
	err := c.delete(ctx, constants.APIPathLabels+"/"+key)
	if err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}

	return nil
}
