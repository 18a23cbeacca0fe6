package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewLabelsCommand creates the labels command group.
func NewLabelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "labels",
		Aliases: []string{"label"},
		Short:   "Manage labels",
		Long:    "Inspect and edit a brandfolder's label hierarchy",
	}

	cmd.AddCommand(newLabelsTreeCommand())
	cmd.AddCommand(newLabelsCreateCommand())
	cmd.AddCommand(newLabelsRenameCommand())
	cmd.AddCommand(newLabelsDeleteCommand())

	return cmd
}

func newLabelsTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree BRANDFOLDER_KEY_OR_NAME",
		Short: "Show the label tree",
		Long:  "Display a brandfolder's labels as an indented hierarchy ordered by position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelsTreeCommand(args[0])
		},
	}
}

func runLabelsTreeCommand(brandfolderKey string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	roots, err := client.Labels().Tree(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to build label tree: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(roots)
	case OutputFormatYAML:
		return StandardYAMLRenderer(roots)
	default:
		if len(roots) == 0 {
			_, _ = os.Stdout.WriteString("No labels found\n")

			return nil
		}

		for _, root := range roots {
			printLabelNode(root, 0)
		}

		return nil
	}
}

func printLabelNode(node *brandfolder.LabelNode, depth int) {
	_, _ = fmt.Fprintf(os.Stdout, "%s%s (%s)\n", strings.Repeat("  ", depth), node.Label.Name(), node.Label.ID)

	for _, child := range node.Children {
		printLabelNode(child, depth+1)
	}
}

func newLabelsCreateCommand() *cobra.Command {
	var (
		brandfolderKey string
		parentKey      string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a label",
		Long:  "Create a label, optionally under a parent label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelsCreateCommand(args[0], brandfolderKey, parentKey)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name (required)")
	cmd.Flags().StringVar(&parentKey, "parent", "", "parent label key")
	_ = cmd.MarkFlagRequired("brandfolder")

	return cmd
}

func runLabelsCreateCommand(name, brandfolderKey, parentKey string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	resource, err := client.Labels().Create(ctx, key, &brandfolder.LabelCreateRequest{
		Name:      name,
		ParentKey: parentKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create label: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully created label '%s' (key: %s)\n", resource.Name(), resource.ID)

		return nil
	})
}

func newLabelsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename LABEL_KEY NEW_NAME",
		Short: "Rename a label",
		Long:  "Change a label's display name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelsRenameCommand(args[0], args[1])
		},
	}
}

func runLabelsRenameCommand(labelKey, newName string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	resource, err := client.Labels().Update(ctx, labelKey, newName)
	if err != nil {
		return fmt.Errorf("failed to rename label: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		_, _ = fmt.Fprintf(os.Stdout, "Successfully renamed label '%s' to '%s'\n", labelKey, resource.Name())

		return nil
	})
}

func newLabelsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete LABEL_KEY",
		Short: "Delete a label",
		Long:  "Delete a label and its sublabels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLabelsDeleteCommand(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runLabelsDeleteCommand(labelKey string, force bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	if !force && !confirmDeletion("label", labelKey) {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return nil
	}

	ctx := context.Background()

	err = client.Labels().Delete(ctx, labelKey)
	if err != nil {
		return fmt.Errorf("failed to delete label: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted label '%s'\n", labelKey)

	return nil
}
