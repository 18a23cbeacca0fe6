package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewBrandfoldersCommand creates the brandfolders command group.
func NewBrandfoldersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "brandfolders",
		Aliases: []string{"brandfolder", "bf"},
		Short:   "Manage brandfolders",
		Long:    "List, inspect, create, update, delete, and search brandfolders",
	}

	cmd.AddCommand(newBrandfoldersListCommand())
	cmd.AddCommand(newBrandfoldersGetCommand())
	cmd.AddCommand(newBrandfoldersCreateCommand())
	cmd.AddCommand(newBrandfoldersUpdateCommand())
	cmd.AddCommand(newBrandfoldersDeleteCommand())
	cmd.AddCommand(newBrandfoldersSearchCommand())

	return cmd
}

func newBrandfoldersListCommand() *cobra.Command {
	var (
		allPages bool
		perPage  int
		orgKey   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List brandfolders",
		Long:  "List all brandfolders the API key has access to",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandfoldersListCommand(allPages, perPage, orgKey)
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&orgKey, "org", "", "limit to one organization")

	return cmd
}

func runBrandfoldersListCommand(allPages bool, perPage int, orgKey string) error {
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

	switch {
	case orgKey != "":
		page, err = client.Brandfolders().ListForOrganization(ctx, orgKey, params)
	case allPages:
		page, err = client.Brandfolders().ListAll(ctx, params)
	default:
		page, err = client.Brandfolders().List(ctx, params)
	}

	if err != nil {
		return fmt.Errorf("failed to list brandfolders: %w", err)
	}

	return outputPage(page, func(page *brandfolder.Page) error {
		return renderBrandfolderTable(page, allPages)
	})
}

func renderBrandfolderTable(page *brandfolder.Page, allPages bool) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No brandfolders found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Key", "Slug", "Privacy", "Tagline")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(resource.Name(), resource.ID,
			attr(resource, "slug"), attr(resource, "privacy"), attr(resource, "tagline"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	pageFooter(page, allPages)

	return nil
}

func newBrandfoldersGetCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "get BRANDFOLDER_KEY_OR_NAME",
		Short: "Get brandfolder details",
		Long:  "Display detailed information about a specific brandfolder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandfoldersGetCommand(args[0], include)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "relationships to side-load")

	return cmd
}

func runBrandfoldersGetCommand(keyOrName string, include []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, keyOrName)
	if err != nil {
		return err
	}

	params := brandfolder.NewQueryParams()
	if len(include) > 0 {
		params.WithInclude(include...)
	}

	resource, err := client.Brandfolders().Get(ctx, key, params)
	if err != nil {
		return fmt.Errorf("failed to get brandfolder: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		return renderDetailsTable("Brandfolder details", resource)
	})
}

func newBrandfoldersCreateCommand() *cobra.Command {
	var (
		orgKey  string
		tagline string
		privacy string
		slug    string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a brandfolder",
		Long:  "Create a new brandfolder within an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandfoldersCreateCommand(args[0], orgKey, tagline, privacy, slug)
		},
	}

	cmd.Flags().StringVar(&orgKey, "org", "", "organization key (required)")
	cmd.Flags().StringVar(&tagline, "tagline", "", "brandfolder tagline")
	cmd.Flags().StringVar(&privacy, "privacy", "", "privacy setting (private, public, stealth)")
	cmd.Flags().StringVar(&slug, "slug", "", "URL slug")
	_ = cmd.MarkFlagRequired("org")

	return cmd
}

func runBrandfoldersCreateCommand(name, orgKey, tagline, privacy, slug string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	resource, err := client.Brandfolders().Create(ctx, orgKey, &brandfolder.BrandfolderCreateRequest{
		Name:    name,
		Tagline: tagline,
		Privacy: privacy,
		Slug:    slug,
	})
	if err != nil {
		return fmt.Errorf("failed to create brandfolder: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully created brandfolder '%s' (key: %s)\n", resource.Name(), resource.ID)

		return nil
	})
}

func newBrandfoldersUpdateCommand() *cobra.Command {
	var (
		newName string
		tagline string
	)

	cmd := &cobra.Command{
		Use:   "update BRANDFOLDER_KEY_OR_NAME",
		Short: "Update a brandfolder",
		Long:  "Update an existing brandfolder's name or tagline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandfoldersUpdateCommand(args[0], newName, tagline)
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "new brandfolder name")
	cmd.Flags().StringVar(&tagline, "tagline", "", "new tagline")

	return cmd
}

func runBrandfoldersUpdateCommand(keyOrName, newName, tagline string) error {
	if newName == "" && tagline == "" {
		_, _ = os.Stdout.WriteString("No updates specified\n")

		return nil
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, keyOrName)
	if err != nil {
		return err
	}

	resource, err := client.Brandfolders().Update(ctx, key, &brandfolder.BrandfolderUpdateRequest{
		Name:    newName,
		Tagline: tagline,
	})
	if err != nil {
		return fmt.Errorf("failed to update brandfolder: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully updated brandfolder '%s' (key: %s)\n", resource.Name(), resource.ID)

		return nil
	})
}

func newBrandfoldersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BRANDFOLDER_KEY_OR_NAME",
		Short: "Delete a brandfolder",
		Long:  "Delete a brandfolder and everything in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandfoldersDeleteCommand(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runBrandfoldersDeleteCommand(keyOrName string, force bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, keyOrName)
	if err != nil {
		return err
	}

	if !force && !confirmDeletion("brandfolder", keyOrName) {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return nil
	}

	err = client.Brandfolders().Delete(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to delete brandfolder: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted brandfolder '%s'\n", keyOrName)

	return nil
}

// confirmDeletion prompts for an interactive yes/no before a destructive
// operation.
func confirmDeletion(entityType, name string) bool {
	_, _ = fmt.Fprintf(os.Stdout, "Really delete %s '%s'? (y/N): ", entityType, name)

	var answer string

	_, _ = fmt.Scanln(&answer)

	return answer == "y" || answer == "Y" || answer == "yes"
}

func newBrandfoldersSearchCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "search BRANDFOLDER_KEY_OR_NAME QUERY",
		Short: "Search assets in a brandfolder",
		Long:  "Run a search expression against a brandfolder's assets",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrandfoldersSearchCommand(args[0], args[1], perPage)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")

	return cmd
}

func runBrandfoldersSearchCommand(keyOrName, query string, perPage int) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, keyOrName)
	if err != nil {
		return err
	}

	params := brandfolder.NewQueryParams()
	if perPage > 0 {
		params.WithPer(perPage)
	}

	page, err := client.Brandfolders().Search(ctx, key, query, params)
	if err != nil {
		return fmt.Errorf("failed to search brandfolder: %w", err)
	}

	return outputPage(page, func(page *brandfolder.Page) error {
		return renderAssetTable(page, false)
	})
}
