package client

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// InvitationsClient implements brandfolder.InvitationsClient.
type InvitationsClient struct {
	pager
}

// NewInvitationsClient creates a new InvitationsClient.
func NewInvitationsClient(httpClient *internalhttp.Client) *InvitationsClient {
	return &InvitationsClient{pager: pager{httpClient: httpClient}}
}

// ListForOrganization fetches one page of an organization's invitations.
func (c *InvitationsClient) ListForOrganization(ctx context.Context, organizationKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/organizations/%s/invitations", organizationKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing invitations for organization: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListForBrandfolder fetches one page of a brandfolder's invitations.
func (c *InvitationsClient) ListForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/invitations", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing invitations for brandfolder: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// Get retrieves a specific invitation.
func (c *InvitationsClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, constants.APIPathInvitations+"/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting invitation: %w", err)
	}

	return resource, nil
}

// Create sends an invitation scoped to exactly one of an organization,
// brandfolder, or collection.
func (c *InvitationsClient) Create(ctx context.Context, request *brandfolder.InvitationCreateRequest) (*brandfolder.Resource, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	path, err := invitationPath(request)
	if err != nil {
		return nil, err
	}

	page, err := c.postPage(ctx, path, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("creating invitation: %w", err)
	}

	return page.Resource(), nil
}

// invitationPath routes the invitation to its scope.
func invitationPath(request *brandfolder.InvitationCreateRequest) (string, error) {
	switch {
	case request.OrganizationKey != "":
		return fmt.Sprintf("/organizations/%s/invitations", request.OrganizationKey), nil
	case request.BrandfolderKey != "":
		return fmt.Sprintf("/brandfolders/%s/invitations", request.BrandfolderKey), nil
	case request.CollectionKey != "":
		return fmt.Sprintf("/collections/%s/invitations", request.CollectionKey), nil
	default:
		return "", brandfolder.ErrInvitationScopeRequired
	}
}

// Delete revokes an invitation.
func (c *InvitationsClient) Delete(ctx context.Context, key string) error {
	err := c.delete(ctx, constants.APIPathInvitations+"/"+key)
	if err != nil {
		return fmt.Errorf("deleting invitation: %w", err)
	}

	return nil
}
