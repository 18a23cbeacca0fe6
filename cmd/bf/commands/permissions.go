package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewPermissionsCommand creates the user permissions command group.
func NewPermissionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "permissions",
		Aliases: []string{"permission"},
		Short:   "Inspect user permissions",
		Long:    "List and revoke the user permissions of an organization, brandfolder, or collection",
	}

	cmd.AddCommand(newPermissionsListCommand())
	cmd.AddCommand(newPermissionsRevokeCommand())

	return cmd
}

func newPermissionsListCommand() *cobra.Command {
	var (
		orgKey         string
		brandfolderKey string
		collectionKey  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user permissions",
		Long:  "List who has access to an organization, brandfolder, or collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPermissionsListCommand(orgKey, brandfolderKey, collectionKey)
		},
	}

	cmd.Flags().StringVar(&orgKey, "org", "", "organization key")
	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name")
	cmd.Flags().StringVar(&collectionKey, "collection", "", "collection key")

	return cmd
}

func runPermissionsListCommand(orgKey, brandfolderKey, collectionKey string) error {
	if orgKey == "" && brandfolderKey == "" && collectionKey == "" {
		return ErrScopeRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var page *brandfolder.Page

	switch {
	case orgKey != "":
		page, err = client.UserPermissions().ListForOrganization(ctx, orgKey, nil)
	case collectionKey != "":
		page, err = client.UserPermissions().ListForCollection(ctx, collectionKey, nil)
	default:
		var key string

		key, err = resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		page, err = client.UserPermissions().ListForBrandfolder(ctx, key, nil)
	}

	if err != nil {
		return fmt.Errorf("failed to list user permissions: %w", err)
	}

	return outputPage(page, renderPermissionTable)
}

func renderPermissionTable(page *brandfolder.Page) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No user permissions found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Permission Level", "User")

	for i := range page.Data {
		resource := &page.Data[i]

		user := NotAvailable
		if refs, ok := resource.Relationships["user"]; ok && len(refs.Refs) > 0 {
			user = refs.Refs[0].ID
		}

		_ = table.Append(resource.ID, attr(resource, "permission_level"), user)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newPermissionsRevokeCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "revoke PERMISSION_KEY",
		Short: "Revoke a user permission",
		Long:  "Remove a user's access grant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPermissionsRevokeCommand(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runPermissionsRevokeCommand(key string, force bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	if !force && !confirmDeletion("user permission", key) {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return nil
	}

	ctx := context.Background()

	err = client.UserPermissions().Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to revoke user permission: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully revoked user permission '%s'\n", key)

	return nil
}
