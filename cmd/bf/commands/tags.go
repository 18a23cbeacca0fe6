package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Inspect tags",
		Long:    "List the tags of a brandfolder or an asset",
	}

	cmd.AddCommand(newTagsListCommand())

	return cmd
}

func newTagsListCommand() *cobra.Command {
	var (
		brandfolderKey string
		assetKey       string
		allPages       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Long:  "List the tags of a brandfolder or a single asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTagsListCommand(brandfolderKey, assetKey, allPages)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name")
	cmd.Flags().StringVar(&assetKey, "asset", "", "asset key")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func runTagsListCommand(brandfolderKey, assetKey string, allPages bool) error {
	if brandfolderKey == "" && assetKey == "" {
		return ErrAssetScopeRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var page *brandfolder.Page

	switch {
	case assetKey != "":
		page, err = client.Tags().ListForAsset(ctx, assetKey, nil)
	case allPages:
		var key string

		key, err = resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		page, err = client.Tags().ListAllForBrandfolder(ctx, key, nil)
	default:
		var key string

		key, err = resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		page, err = client.Tags().ListForBrandfolder(ctx, key, nil)
	}

	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	return outputPage(page, func(page *brandfolder.Page) error {
		return renderTagTable(page, allPages)
	})
}

func renderTagTable(page *brandfolder.Page, allPages bool) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No tags found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Key", "Auto Generated")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(resource.Name(), resource.ID, attr(resource, "auto_generated"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	pageFooter(page, allPages)

	return nil
}
