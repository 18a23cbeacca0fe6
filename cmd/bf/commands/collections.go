package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewCollectionsCommand creates the collections command group.
func NewCollectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"collection"},
		Short:   "Manage collections",
		Long:    "List, inspect, create, update, and delete collections",
	}

	cmd.AddCommand(newCollectionsListCommand())
	cmd.AddCommand(newCollectionsGetCommand())
	cmd.AddCommand(newCollectionsCreateCommand())
	cmd.AddCommand(newCollectionsDeleteCommand())

	return cmd
}

func newCollectionsListCommand() *cobra.Command {
	var (
		brandfolderKey string
		perPage        int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Long:  "List all collections, or only those of one brandfolder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionsListCommand(brandfolderKey, perPage)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "limit to one brandfolder")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func runCollectionsListCommand(brandfolderKey string, perPage int) error {
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

	if brandfolderKey != "" {
		var key string

		key, err = resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		page, err = client.Collections().ListForBrandfolder(ctx, key, params)
	} else {
		page, err = client.Collections().List(ctx, params)
	}

	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	return outputPage(page, func(page *brandfolder.Page) error {
		return renderCollectionTable(page)
	})
}

func renderCollectionTable(page *brandfolder.Page) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No collections found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Key", "Slug", "Tagline")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(resource.Name(), resource.ID, attr(resource, "slug"), attr(resource, "tagline"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	pageFooter(page, false)

	return nil
}

func newCollectionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COLLECTION_KEY",
		Short: "Get collection details",
		Long:  "Display detailed information about a specific collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionsGetCommand(args[0])
		},
	}
}

func runCollectionsGetCommand(key string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	resource, err := client.Collections().Get(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to get collection: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		return renderDetailsTable("Collection details", resource)
	})
}

func newCollectionsCreateCommand() *cobra.Command {
	var (
		brandfolderKey string
		tagline        string
		slug           string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a collection",
		Long:  "Create a new collection within a brandfolder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionsCreateCommand(args[0], brandfolderKey, tagline, slug)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name (required)")
	cmd.Flags().StringVar(&tagline, "tagline", "", "collection tagline")
	cmd.Flags().StringVar(&slug, "slug", "", "URL slug")
	_ = cmd.MarkFlagRequired("brandfolder")

	return cmd
}

func runCollectionsCreateCommand(name, brandfolderKey, tagline, slug string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	resource, err := client.Collections().Create(ctx, key, &brandfolder.CollectionCreateRequest{
		Name:    name,
		Tagline: tagline,
		Slug:    slug,
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully created collection '%s' (key: %s)\n", resource.Name(), resource.ID)

		return nil
	})
}

func newCollectionsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete COLLECTION_KEY",
		Short: "Delete a collection",
		Long:  "Delete a collection; the assets it groups remain in the brandfolder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollectionsDeleteCommand(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runCollectionsDeleteCommand(key string, force bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	if !force && !confirmDeletion("collection", key) {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return nil
	}

	ctx := context.Background()

	err = client.Collections().Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted collection '%s'\n", key)

	return nil
}
