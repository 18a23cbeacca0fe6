package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/cobra"
)

// ErrAssetScopeRequired is returned when an asset listing has no container.
var ErrAssetScopeRequired = errors.New("one of --brandfolder or --collection is required")

// NewAssetsCommand creates the assets command group.
func NewAssetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assets",
		Aliases: []string{"asset"},
		Short:   "Manage assets",
		Long:    "List, inspect, create, tag, and delete assets",
	}

	cmd.AddCommand(newAssetsListCommand())
	cmd.AddCommand(newAssetsGetCommand())
	cmd.AddCommand(newAssetsCreateCommand())
	cmd.AddCommand(newAssetsDeleteCommand())
	cmd.AddCommand(newAssetsTagCommand())
	cmd.AddCommand(newAssetsUntagCommand())
	cmd.AddCommand(newAssetsSetFieldCommand())
	cmd.AddCommand(newAssetsAttachmentsCommand())

	return cmd
}

func newAssetsListCommand() *cobra.Command {
	var (
		brandfolderKey string
		collectionKey  string
		allPages       bool
		perPage        int
		search         string
		include        []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		Long:  "List the assets in a brandfolder or collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsListCommand(brandfolderKey, collectionKey, allPages, perPage, search, include)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name")
	cmd.Flags().StringVar(&collectionKey, "collection", "", "collection key")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&search, "search", "", "search expression")
	cmd.Flags().StringSliceVar(&include, "include", nil, "relationships to side-load (e.g. custom_fields,attachments)")

	return cmd
}

func runAssetsListCommand(brandfolderKey, collectionKey string, allPages bool, perPage int, search string, include []string) error {
	if brandfolderKey == "" && collectionKey == "" {
		return ErrAssetScopeRequired
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := brandfolder.NewQueryParams()
	if perPage > 0 {
		params.WithPer(perPage)
	}

	if search != "" {
		params.WithSearch(search)
	}

	if len(include) > 0 {
		params.WithInclude(include...)
	}

	var page *brandfolder.Page

	switch {
	case collectionKey != "":
		page, err = client.Assets().ListForCollection(ctx, collectionKey, params)
	case allPages:
		var key string

		key, err = resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		page, err = client.Assets().ListAllForBrandfolder(ctx, key, params)
	default:
		var key string

		key, err = resolveBrandfolderKey(ctx, client, brandfolderKey)
		if err != nil {
			return err
		}

		page, err = client.Assets().ListForBrandfolder(ctx, key, params)
	}

	if err != nil {
		return fmt.Errorf("failed to list assets: %w", err)
	}

	return outputPage(page, func(page *brandfolder.Page) error {
		return renderAssetTable(page, allPages)
	})
}

func renderAssetTable(page *brandfolder.Page, allPages bool) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No assets found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Key", "Approved", "Attachments", "Custom Fields")

	for i := range page.Data {
		resource := &page.Data[i]

		fields := make([]string, 0, len(resource.CustomFields))
		for name := range resource.CustomFields {
			fields = append(fields, name)
		}

		_ = table.Append(resource.Name(), resource.ID, attr(resource, "approved"),
			fmt.Sprintf("%d", len(resource.AttachmentIDs)), strings.Join(fields, ", "))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	pageFooter(page, allPages)

	return nil
}

func newAssetsGetCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "get ASSET_KEY",
		Short: "Get asset details",
		Long:  "Display detailed information about a specific asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsGetCommand(args[0], include)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "relationships to side-load")

	return cmd
}

func runAssetsGetCommand(assetKey string, include []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	params := brandfolder.NewQueryParams()
	if len(include) > 0 {
		params.WithInclude(include...)
	}

	resource, err := client.Assets().Get(ctx, assetKey, params)
	if err != nil {
		return fmt.Errorf("failed to get asset: %w", err)
	}

	return outputResource(resource, func(resource *brandfolder.Resource) error {
		err := renderDetailsTable("Asset details", resource)
		if err != nil {
			return err
		}

		renderCustomFieldsTable(resource.CustomFields)

		return nil
	})
}

func renderCustomFieldsTable(fields map[string]interface{}) {
	if len(fields) == 0 {
		return
	}

	_, _ = os.Stdout.WriteString("\nCustom fields:\n")

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	for name, value := range fields {
		_ = table.Append(name, fmt.Sprintf("%v", value))
	}

	_ = table.Render()
}

func newAssetsCreateCommand() *cobra.Command {
	var (
		brandfolderKey string
		sectionKey     string
		description    string
		attachmentURLs []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an asset",
		Long:  "Create a new asset in a brandfolder section from attachment URLs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsCreateCommand(args[0], brandfolderKey, sectionKey, description, attachmentURLs)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name (required)")
	cmd.Flags().StringVar(&sectionKey, "section", "", "section key (required)")
	cmd.Flags().StringVar(&description, "description", "", "asset description")
	cmd.Flags().StringSliceVar(&attachmentURLs, "attachment", nil, "attachment source URL (repeatable)")
	_ = cmd.MarkFlagRequired("brandfolder")
	_ = cmd.MarkFlagRequired("section")

	return cmd
}

func runAssetsCreateCommand(name, brandfolderKey, sectionKey, description string, attachmentURLs []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	request := &brandfolder.AssetCreateRequest{
		Name:        name,
		Description: description,
		SectionKey:  sectionKey,
	}

	for _, url := range attachmentURLs {
		request.Attachments = append(request.Attachments, brandfolder.AttachmentInput{URL: url})
	}

	page, err := client.Assets().Create(ctx, key, request)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return outputPage(page, func(page *brandfolder.Page) error {
		for i := range page.Data {
			resource := &page.Data[i]
			_, _ = fmt.Fprintf(os.Stdout, "Successfully created asset '%s' (key: %s)\n", resource.Name(), resource.ID)
		}

		return nil
	})
}

func newAssetsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ASSET_KEY",
		Short: "Delete an asset",
		Long:  "Delete an asset and its attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsDeleteCommand(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func runAssetsDeleteCommand(assetKey string, force bool) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	if !force && !confirmDeletion("asset", assetKey) {
		_, _ = os.Stdout.WriteString("Cancelled\n")

		return nil
	}

	ctx := context.Background()

	err = client.Assets().Delete(ctx, assetKey)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted asset '%s'\n", assetKey)

	return nil
}

func newAssetsTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag ASSET_KEY TAG...",
		Short: "Add tags to an asset",
		Long:  "Attach one or more tag names to an asset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsTagCommand(args[0], args[1:])
		},
	}
}

func runAssetsTagCommand(assetKey string, names []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	_, err = client.Assets().AddTags(ctx, assetKey, names)
	if err != nil {
		return fmt.Errorf("failed to tag asset: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully tagged asset '%s' with %s\n", assetKey, strings.Join(names, ", "))

	return nil
}

func newAssetsUntagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "untag ASSET_KEY TAG...",
		Short: "Remove tags from an asset",
		Long:  "Detach one or more tag names from an asset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsUntagCommand(args[0], args[1:])
		},
	}
}

func runAssetsUntagCommand(assetKey string, names []string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	err = client.Assets().RemoveTags(ctx, assetKey, names)
	if err != nil {
		return fmt.Errorf("failed to untag asset: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully removed tags %s from asset '%s'\n", strings.Join(names, ", "), assetKey)

	return nil
}

func newAssetsSetFieldCommand() *cobra.Command {
	var (
		brandfolderKey string
		fields         map[string]string
	)

	cmd := &cobra.Command{
		Use:   "set-field ASSET_KEY",
		Short: "Set custom field values on an asset",
		Long:  "Set custom field values on an asset by field name; fields whose names do not resolve are reported and skipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsSetFieldCommand(args[0], brandfolderKey, fields)
		},
	}

	cmd.Flags().StringVar(&brandfolderKey, "brandfolder", "", "brandfolder key or name (required)")
	cmd.Flags().StringToStringVar(&fields, "field", nil, "field values to set (name=value, repeatable)")
	_ = cmd.MarkFlagRequired("brandfolder")

	return cmd
}

func runAssetsSetFieldCommand(assetKey, brandfolderKey string, fields map[string]string) error {
	if len(fields) == 0 {
		_, _ = os.Stdout.WriteString("No fields specified\n")

		return nil
	}

	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	key, err := resolveBrandfolderKey(ctx, client, brandfolderKey)
	if err != nil {
		return err
	}

	values := make(map[string]interface{}, len(fields))
	for name, value := range fields {
		values[name] = value
	}

	result, err := client.Assets().SetCustomFields(ctx, key, assetKey, values)
	if err != nil && !errors.Is(err, brandfolder.ErrUnresolvedCustomFields) {
		return fmt.Errorf("failed to set custom fields: %w", err)
	}

	for name := range result.Applied {
		_, _ = fmt.Fprintf(os.Stdout, "Set '%s' on asset '%s'\n", name, assetKey)
	}

	for _, unresolved := range result.Unresolved {
		_, _ = fmt.Fprintf(os.Stdout, "Skipped '%s': %s\n", unresolved.Name, unresolved.Reason)
	}

	return nil
}

func newAssetsAttachmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attachments ASSET_KEY",
		Short: "List an asset's attachments",
		Long:  "List the attachments of an asset in position order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsAttachmentsCommand(args[0])
		},
	}
}

func runAssetsAttachmentsCommand(assetKey string) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	page, err := client.Assets().ListAttachments(ctx, assetKey, nil)
	if err != nil {
		return fmt.Errorf("failed to list attachments: %w", err)
	}

	return outputPage(page, renderAttachmentTable)
}

func renderAttachmentTable(page *brandfolder.Page) error {
	if len(page.Data) == 0 {
		_, _ = os.Stdout.WriteString("No attachments found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Filename", "Key", "Position", "URL")

	for i := range page.Data {
		resource := &page.Data[i]
		_ = table.Append(attr(resource, "filename"), resource.ID,
			attr(resource, "position"), attr(resource, "url"))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
