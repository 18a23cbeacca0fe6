package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// NewCustomFieldsCommand creates the custom fields command group.
func NewCustomFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "custom-fields",
		Aliases: []string{"custom-field", "fields"},
		Short:   "Manage custom field keys",
		Long:    "List, create, and delete the custom field keys of a brandfolder",
	}

	cmd.AddCommand(newCustomFieldsListCommand())
	cmd.AddCommand(newCustomFieldsCreateCommand())
	cmd.AddCommand(newCustomFieldsDeleteCommand())

	return cmd
}

func newCustomFieldsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list BRANDFOLDER_KEY_OR_NAME",
		Short: "List custom field keys",
		Long:  "List every custom field key defined on a brandfolder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomFieldsListCommand(args[0])
		},
	}

	return cmd
}

func runCustomFieldsListCommand(brandfolderKey string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	page, err := client.CustomFields().ListAllKeys(ctx, key, nil)
	if err != nil {
		return fmt.Errorf("failed to list custom field keys: %w", err)
	}

	return outputPage(page, renderCustomFieldKeyTable)
}

func renderCustomFieldKeyTable(page *brandfolder.Page) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No custom field keys found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Key ID", "Restricted", "Allowed Values")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(resource.Name(), resource.ID,
			attr(resource, "restricted"), attr(resource, "allowed_values"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newCustomFieldsCreateCommand() *cobra.Command {
	var brandfolderKey string

	cmd := &cobra.Command{
		Use:   "create NAME...",
		Short: "Create custom field keys",
		Long:  "Create one or more custom field keys on a brandfolder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomFieldsCreateCommand(brandfolderKey, args)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name (required)")
	_ = cmd.MarkFlagRequired("brandfolder")

	return cmd
}

func runCustomFieldsCreateCommand(brandfolderKey string, names []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	_, err = client.CustomFields().CreateKeys(ctx, key, names)
	if err != nil {
		return fmt.Errorf("failed to create custom field keys: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully created custom field keys: %s\n", strings.Join(names, ", "))

	return nil
}

func newCustomFieldsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete KEY_ID",
		Short: "Delete a custom field key",
		Long:  "Delete a custom field key and its values everywhere",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCustomFieldsDeleteCommand(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runCustomFieldsDeleteCommand(keyID string, force bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	if !force && !confirmDeletion("custom field key", keyID) {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return nil
	}

	ctx := context.Background()

	err = client.CustomFields().DeleteKey(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to delete custom field key: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted custom field key '%s'\n", keyID)

	return nil
}
