package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewSectionsCommand creates the sections command group.
func NewSectionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sections",
		Aliases: []string{"section"},
		Short:   "Manage sections",
		Long:    "List and create the sections that organize a brandfolder's assets",
	}

	cmd.AddCommand(newSectionsListCommand())
	cmd.AddCommand(newSectionsCreateCommand())

	return cmd
}

func newSectionsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list BRANDFOLDER_KEY_OR_NAME",
		Short: "List sections",
		Long:  "List the sections of a brandfolder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSectionsListCommand(args[0])
		},
	}

	return cmd
}

func runSectionsListCommand(brandfolderKey string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	page, err := client.Sections().ListForBrandfolder(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	return outputPage(page, renderSectionTable)
}

func renderSectionTable(page *brandfolder.Page) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No sections found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Key", "Default Asset Type", "Position")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(resource.Name(), resource.ID,
			attr(resource, "default_asset_type"), attr(resource, "position"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newSectionsCreateCommand() *cobra.Command {
	var (
		brandfolderKey   string
		defaultAssetType string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a section",
		Long:  "Create a new section in a brandfolder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSectionsCreateCommand(args[0], brandfolderKey, defaultAssetType)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name (required)")
	cmd.Flags().StringVar(&defaultAssetType, "default-asset-type", "", "default asset type for the section")
	_ = cmd.MarkFlagRequired("brandfolder")

	return cmd
}

func runSectionsCreateCommand(name, brandfolderKey, defaultAssetType string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	resource, err := client.Sections().Create(ctx, key, &brandfolder.SectionCreateRequest{
		Name:             name,
		DefaultAssetType: defaultAssetType,
	})
	if err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully created section '%s' (key: %s)\n", resource.Name(), resource.ID)

		return nil
	})
}
