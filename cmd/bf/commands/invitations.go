package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewInvitationsCommand creates the invitations command group.
func NewInvitationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invitations",
		Aliases: []string{"invitation", "invites"},
		Short:   "Manage invitations",
		Long:    "List, send, and revoke invitations to organizations, brandfolders, and collections",
	}

	cmd.AddCommand(newInvitationsListCommand())
	cmd.AddCommand(newInvitationsCreateCommand())
	cmd.AddCommand(newInvitationsRevokeCommand())

	return cmd
}

func newInvitationsListCommand() *cobra.Command {
	var (
		orgKey         string
		brandfolderKey string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invitations",
		Long:  "List the pending invitations of an organization or brandfolder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvitationsListCommand(orgKey, brandfolderKey)
		},
	}

	cmd.Flags().StringVar(&orgKey, "org", "", "organization key")
	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name")

	return cmd
}

func runInvitationsListCommand(orgKey, brandfolderKey string) error {
	if orgKey == "" && brandfolderKey == "" {
		return ErrScopeRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var page *brandfolder.Page

	if orgKey != "" {
		page, err = client.Invitations().ListForOrganization(ctx, orgKey, nil)
	} else {
		var key string

		key, err = resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		page, err = client.Invitations().ListForBrandfolder(ctx, key, nil)
	}

	if err != nil {
		return fmt.Errorf("failed to list invitations: %w", err)
	}

	return outputPage(page, renderInvitationTable)
}

func renderInvitationTable(page *brandfolder.Page) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No invitations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Email", "Key", "Permission Level")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(attr(resource, "email"), resource.ID, attr(resource, "permission_level"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newInvitationsCreateCommand() *cobra.Command {
	var (
		orgKey          string
		brandfolderKey  string
		collectionKey   string
		permissionLevel string
		message         string
	)

	cmd := &cobra.Command{
		Use:   "create EMAIL",
		Short: "Send an invitation",
		Long:  "Invite a user by email to an organization, brandfolder, or collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvitationsCreateCommand(args[0], orgKey, brandfolderKey, collectionKey, permissionLevel, message)
		},
	}

	cmd.Flags().StringVar(&orgKey, "org", "", "organization key")
	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name")
	cmd.Flags().StringVar(&collectionKey, "collection", "", "collection key")
	cmd.Flags().StringVar(&permissionLevel, "permission", brandfolder.PermissionGuest, "permission level (guest, collaborator, admin, owner)")
	cmd.Flags().StringVar(&message, "message", "", "personal message included in the invitation")

	return cmd
}

func runInvitationsCreateCommand(email, orgKey, brandfolderKey, collectionKey, permissionLevel, message string) error {
	if orgKey == "" && brandfolderKey == "" && collectionKey == "" {
		return ErrScopeRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	request := &brandfolder.InvitationCreateRequest{
		Email:           email,
		PermissionLevel: permissionLevel,
		PersonalMessage: message,
		OrganizationKey: orgKey,
		CollectionKey:   collectionKey,
	}

	if brandfolderKey != "" {
		key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		request.BrandfolderKey = key
	}

	resource, err := client.Invitations().Create(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully invited '%s' as %s (key: %s)\n", email, permissionLevel, resource.ID)

		return nil
	})
}

func newInvitationsRevokeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke INVITATION_KEY",
		Short: "Revoke an invitation",
		Long:  "Revoke a pending invitation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInvitationsRevokeCommand(args[0])
		},
	}
}

func runInvitationsRevokeCommand(key string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	err = client.Invitations().Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to revoke invitation: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully revoked invitation '%s'\n", key)

	return nil
}
