package client

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// AttachmentsClient implements brandfolder.AttachmentsClient.
type AttachmentsClient struct {
	pager
}

// NewAttachmentsClient creates a new AttachmentsClient.
func NewAttachmentsClient(httpClient *internalhttp.Client) *AttachmentsClient {
	return &AttachmentsClient{pager: pager{httpClient: httpClient}}
}

// Get retrieves a specific attachment.
func (c *AttachmentsClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, constants.APIPathAttachments+"/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting attachment: %w", err)
	}

	return resource, nil
}

// Create adds an attachment to an asset.
func (c *AttachmentsClient) Create(ctx context.Context, assetKey string, request *brandfolder.AttachmentCreateRequest) (*brandfolder.Resource, error) {
	path := fmt.Sprintf("/assets/%s/attachments", assetKey)

	page, err := c.postPage(ctx, path, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("creating attachment: %w", err)
	}

	return page.Resource(), nil
}

// Update updates an attachment's attributes.
func (c *AttachmentsClient) Update(ctx context.Context, key string, request *brandfolder.AttachmentUpdateRequest) (*brandfolder.Resource, error) {
	resource, err := c.putResource(ctx, constants.APIPathAttachments+"/"+key, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("updating attachment: %w", err)
	}

	return resource, nil
}

// Delete deletes an attachment.
func (c *AttachmentsClient) Delete(ctx context.Context, key string) error {
	err := c.delete(ctx, constants.APIPathAttachments+"/"+key)
	if err != nil {
		return fmt.Errorf("deleting attachment: %w", err)
	}

	return nil
}
