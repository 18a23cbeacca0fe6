package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// AssetsClient implements brandfolder.AssetsClient.
type AssetsClient struct {
	pager
	customFields *CustomFieldsClient
	opts         *brandfolder.PaginationOptions
}

// NewAssetsClient creates a new AssetsClient.
func NewAssetsClient(httpClient *internalhttp.Client, customFields *CustomFieldsClient, opts *brandfolder.PaginationOptions) *AssetsClient {
	return &AssetsClient{
		pager:        pager{httpClient: httpClient},
		customFields: customFields,
		opts:         opts,
	}
}

// ListForBrandfolder fetches one page of a brandfolder's assets.
func (c *AssetsClient) ListForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/assets", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing assets for brandfolder: %w", err)
	}

	page.Normalize(c.keyIDs(ctx, brandfolderKey, params))

	return page, nil
}

// ListAllForBrandfolder fetches and merges every page of a brandfolder's
// assets. Custom field values in the included data are keyed by name and,
// when the key lookup succeeds, by key ID.
func (c *AssetsClient) ListAllForBrandfolder(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	opts := *c.opts
	opts.KeyIDs = c.keyIDs(ctx, brandfolderKey, params)

	path := fmt.Sprintf("/brandfolders/%s/assets", brandfolderKey)

	page, err := brandfolder.FetchAllPages(ctx, c, path, params, &opts)
	if err != nil {
		return nil, fmt.Errorf("listing all assets for brandfolder: %w", err)
	}

	return page, nil
}

// ListForCollection fetches one page of a collection's assets.
func (c *AssetsClient) ListForCollection(ctx context.Context, collectionKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/collections/%s/assets", collectionKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing assets for collection: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// Get retrieves a specific asset.
func (c *AssetsClient) Get(ctx context.Context, key string, params *brandfolder.QueryParams) (*brandfolder.Resource, error) {
	resource, err := c.getResource(ctx, constants.APIPathAssets+"/"+key, params)
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return resource, nil
}

// assetCreatePayload routes new assets into a section.
type assetCreatePayload struct {
	Data struct {
		Attributes []brandfolder.AssetCreateRequest `json:"attributes"`
	} `json:"data"`
	SectionKey string `json:"section_key"`
}

// Create creates an asset inside a brandfolder section.
func (c *AssetsClient) Create(ctx context.Context, brandfolderKey string, request *brandfolder.AssetCreateRequest) (*brandfolder.Page, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	payload := &assetCreatePayload{SectionKey: request.SectionKey}
	payload.Data.Attributes = []brandfolder.AssetCreateRequest{*request}

	path := fmt.Sprintf("/brandfolders/%s/assets", brandfolderKey)

	page, err := c.postPage(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}

	return page, nil
}

// Update updates an asset's attributes.
func (c *AssetsClient) Update(ctx context.Context, key string, request *brandfolder.AssetUpdateRequest) (*brandfolder.Resource, error) {
	resource, err := c.putResource(ctx, constants.APIPathAssets+"/"+key, wrapAttributes(request))
	if err != nil {
		return nil, fmt.Errorf("updating asset: %w", err)
	}

	return resource, nil
}

// Delete deletes an asset.
func (c *AssetsClient) Delete(ctx context.Context, key string) error {
	err := c.delete(ctx, constants.APIPathAssets+"/"+key)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	return nil
}

// ListAttachments fetches one page of an asset's attachments.
func (c *AssetsClient) ListAttachments(ctx context.Context, assetKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/assets/%s/attachments", assetKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing attachments for asset: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

type tagAttributes struct {
	Name string `json:"name"`
}

// AddTags attaches tag names to an asset.
func (c *AssetsClient) AddTags(ctx context.Context, assetKey string, names []string) (*brandfolder.Page, error) {
	attributes := make([]tagAttributes, 0, len(names))
	for _, name := range names {
		attributes = append(attributes, tagAttributes{Name: name})
	}

	path := fmt.Sprintf("/assets/%s/tags", assetKey)

	page, err := c.postPage(ctx, path, wrapAttributes(attributes))
	if err != nil {
		return nil, fmt.Errorf("adding tags to asset: %w", err)
	}

	return page, nil
}

// RemoveTags detaches tag names from an asset. The asset's tags are
// aggregated across every page before matching; names without a matching
// tag on the asset are ignored.
func (c *AssetsClient) RemoveTags(ctx context.Context, assetKey string, names []string) error {
	path := fmt.Sprintf("/assets/%s/tags", assetKey)

	page, err := brandfolder.FetchAllPages(ctx, c, path, nil, c.opts)
	if err != nil {
		return fmt.Errorf("listing tags for asset: %w", err)
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	for i := range page.Data {
		tag := &page.Data[i]
		if !wanted[tag.Name()] {
			continue
		}

		err = c.delete(ctx, "/tags/"+tag.ID)
		if err != nil {
			return fmt.Errorf("removing tag %q from asset: %w", tag.Name(), err)
		}
	}

	return nil
}

// SetCustomFields applies name-keyed custom field values to an asset.
// Names are translated to key IDs via the resolver; every resolvable field
// is applied even when others fail to resolve. An unresolved name yields a
// partial failure: the returned result accounts for every field, and the
// error enumerates the names that were skipped.
func (c *AssetsClient) SetCustomFields(ctx context.Context, brandfolderKey, assetKey string, fields map[string]interface{}) (*brandfolder.CustomFieldsResult, error) {
	keyIDs, err := c.customFields.KeyIDsByName(ctx, brandfolderKey)
	if err != nil {
		return nil, fmt.Errorf("resolving custom field keys: %w", err)
	}

	result := &brandfolder.CustomFieldsResult{Applied: make(map[string]string)}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	// Deterministic application and reporting order.
	sort.Strings(names)

	for _, name := range names {
		keyID, ok := keyIDs[name]
		if !ok {
			result.Unresolved = append(result.Unresolved, brandfolder.UnresolvedCustomField{
				Name:   name,
				Reason: fmt.Sprintf("no custom field key named %q in brandfolder %s", name, brandfolderKey),
			})

			continue
		}

		_, err = c.customFields.AddValues(ctx, keyID, []brandfolder.CustomFieldValueInput{
			{Value: fields[name], AssetKey: assetKey},
		})
		if err != nil {
			return result, fmt.Errorf("setting custom field %q: %w", name, err)
		}

		result.Applied[name] = keyID
	}

	if len(result.Unresolved) > 0 {
		skipped := make([]string, 0, len(result.Unresolved))
		for _, field := range result.Unresolved {
			skipped = append(skipped, field.Name)
		}

		return result, fmt.Errorf("%w: %s", brandfolder.ErrUnresolvedCustomFields, strings.Join(skipped, ", "))
	}

	return result, nil
}

// keyIDs resolves the brandfolder's custom field key mapping for
// normalization. Failure here is non-fatal: entities simply lack the
// ID-keyed custom field map. The lookup is skipped entirely unless the
// caller asked for custom field data to be side-loaded.
func (c *AssetsClient) keyIDs(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) map[string]string {
	if params == nil || !includesCustomFields(params.Include) {
		return nil
	}

	keyIDs, err := c.customFields.KeyIDsByName(ctx, brandfolderKey)
	if err != nil {
		return nil
	}

	return keyIDs
}

func includesCustomFields(include []string) bool {
	for _, name := range include {
		if name == "custom_fields" || name == "custom_field_values" {
			return true
		}
	}

	return false
}
