package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/orientier/brandfolder-go/pkg/bfclient"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// NotAvailable is displayed for attributes the API did not return.
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2
)

// Static errors for CLI-level failures.
var (
	ErrAPIKeyNotConfigured  = errors.New("no API key configured: run 'bf login', pass --api-key, or set BF_API_KEY")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrBrandfolderNotFound  = errors.New("brandfolder not found")
	ErrScopeRequired        = errors.New("one of --org, --brandfolder, or --collection is required")
)

// CreateClient builds an API client from the active configuration.
func CreateClient() (brandfolder.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, ErrAPIKeyNotConfigured
	}

	config := &brandfolder.Config{
		APIKey:      apiKey,
		APIEndpoint: viper.GetString("api"),
		Debug:       viper.GetBool("verbose"),
	}

	client, err := bfclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// outputPage renders a list page in the configured output format, delegating
// to the provided table renderer for the default format.
func outputPage(page *brandfolder.Page, renderTable func(*brandfolder.Page) error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(page.Data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page.Data)
	default:
		return renderTable(page)
	}
}

// outputResource renders a single resource in the configured output format.
func outputResource(resource *brandfolder.Resource, renderTable func(*brandfolder.Resource) error) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(resource)
	case OutputFormatYAML:
		return StandardYAMLRenderer(resource)
	default:
		return renderTable(resource)
	}
}

// attr returns an attribute rendered for table output, NotAvailable when the
// attribute is absent.
func attr(resource *brandfolder.Resource, key string) string {
	value, ok := resource.Attributes[key]
	if !ok || value == nil {
		return NotAvailable
	}

	switch typed := value.(type) {
	case string:
		if typed == "" {
			return NotAvailable
		}

		return typed
	case float64:
		return fmt.Sprintf("%v", typed)
	case bool:
		if typed {
			return "true"
		}

		return "false"
	default:
		return fmt.Sprintf("%v", typed)
	}
}

// renderDetailsTable prints a Property/Value table of the resource's key,
// type, and every attribute.
func renderDetailsTable(title string, resource *brandfolder.Resource) error {
	_, _ = fmt.Fprintf(os.Stdout, "%s:\n\n", title)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("Key", resource.ID)
	_ = table.Append("Type", resource.Type)

	for key := range resource.Attributes {
		_ = table.Append(key, attr(resource, key))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// pageFooter prints pagination hints after a table.
func pageFooter(page *brandfolder.Page, allPages bool) {
	if page.Truncated {
		_, _ = os.Stdout.WriteString("\nResults truncated at the page cap; narrow the query or raise --max-pages.\n")

		return
	}

	if !allPages && page.Meta != nil && page.Meta.NextPage != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nMore results available. Use --all to fetch every page.\n")
	}
}

// resolveBrandfolderKey accepts a brandfolder key, name, or slug and returns
// the key.
func resolveBrandfolderKey(ctx context.Context, client brandfolder.Client, keyOrName string) (string, error) {
	_, err := client.Brandfolders().Get(ctx, keyOrName, nil)
	if err == nil {
		return keyOrName, nil
	}

	page, err := client.Brandfolders().ListAll(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to list brandfolders: %w", err)
	}

	for i := range page.Data {
		resource := &page.Data[i]

		slug, _ := resource.String("slug")
		if resource.Name() == keyOrName || slug == keyOrName {
			return resource.ID, nil
		}
	}

	return "", fmt.Errorf("brandfolder '%s': %w", keyOrName, ErrBrandfolderNotFound)
}
