package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewOrgsCommand creates the organizations command group.
func NewOrgsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orgs",
		Aliases: []string{"organizations", "org"},
		Short:   "Manage organizations",
		Long:    "List the organizations visible to the configured API key",
	}

	cmd.AddCommand(newOrgsListCommand())
	cmd.AddCommand(newOrgsGetCommand())

	return cmd
}

func newOrgsListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List organizations",
		Long:  "List all organizations the API key has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsListCommand(allPages, perPage)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func runOrgsListCommand(allPages bool, perPage int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := brandfolder.NewQueryParams()
	if perPage > 0 {
		params.WithPer(perPage)
	}

	var page *brandfolder.Page
	if allPages {
		page, err = client.Organizations().ListAll(ctx, params)
	} else {
		page, err = client.Organizations().List(ctx, params)
	}

	if err != nil {
		return fmt.Errorf("failed to list organizations: %w", err)
	}

	return outputPage(page, func(page *brandfolder.Page) error {
		return renderOrganizationTable(page, allPages)
	})
}

func renderOrganizationTable(page *brandfolder.Page, allPages bool) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No organizations found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Key", "Slug")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(resource.Name(), resource.ID, attr(resource, "slug"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	pageFooter(page, allPages)

	return nil
}

func newOrgsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ORG_KEY_OR_NAME",
		Short: "Get organization details",
		Long:  "Display detailed information about a specific organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrgsGetCommand(args[0])
		},
	}
}

func runOrgsGetCommand(keyOrName string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	org, err := findOrganizationByKeyOrName(ctx, client, keyOrName)
	if err != nil {
		return err
	}

	return outputResource(org, func(resource *brandfolder.Resource) error {
		return renderDetailsTable("Organization details", resource)
	})
}

func findOrganizationByKeyOrName(ctx context.Context, client brandfolder.Client, keyOrName string) (*brandfolder.Resource, error) {
	page, err := client.Organizations().ListAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	for i := range page.Data {
		resource := &page.Data[i]

		slug, _ := resource.String("slug")
		if resource.ID == keyOrName || resource.Name() == keyOrName || slug == keyOrName {
			return resource, nil
		}
	}

	return nil, fmt.Errorf("organization '%s': %w", keyOrName, ErrOrganizationNotFound)
}
