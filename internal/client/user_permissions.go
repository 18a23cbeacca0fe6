package client

import (
	"context"
	"fmt"

	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// UserPermissionsClient implements brandfolder.UserPermissionsClient.
type UserPermissionsClient struct {
	pager
}

// NewUserPermissionsClient creates a new UserPermissionsClient.
func NewUserPermissionsClient(httpClient *internalhttp.Client) *UserPermissionsClient {
	return &UserPermissionsClient{pager: pager{httpClient: httpClient}}
}

// ListForOrganization fetches one page of an organization's user permissions.
func (c *UserPermissionsClient) ListForOrganization(ctx context.Context, organizationKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/organizations/%s/user_permissions", organizationKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing user permissions for organization: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListForBrandfolder fetches one page of a brandfolder's user permissions.
func (c *UserPermissionsClient) ListForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/user_permissions", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing user permissions for brandfolder: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListForCollection fetches one page of a collection's user permissions.
func (c *UserPermissionsClient) ListForCollection(ctx context.Context, collectionKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/collections/%s/user_permissions", collectionKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing user permissions for collection: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// Get retrieves a specific user permission.
func (c *UserPermissionsClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, "/user_permissions/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting user permission: %w", err)
	}

	return resource, nil
}

// Delete revokes a user permission.
func (c *UserPermissionsClient) Delete(ctx context.Context, key string) error {
	err := c.delete(ctx, "/user_permissions/"+key)
	if err != nil {
		return fmt.Errorf("deleting user permission: %w", err)
	}

	return nil
}
