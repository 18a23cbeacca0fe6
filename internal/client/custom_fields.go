package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/orientier/brandfolder-go/internal/constants"
	internalhttp "github.com/orientier/brandfolder-go/internal/http"
	"github.com/orientier/brandfolder-go/pkg/brandfolder"
)

// keyLookupPrefix namespaces cached key lookups per brandfolder.
const keyLookupPrefix = "custom_field_keys:"

// CustomFieldsClient implements brandfolder.CustomFieldsClient. Key
// lookups are cached because every name-to-ID resolution otherwise costs
// a full key listing.
type CustomFieldsClient struct {
	pager
	cache brandfolder.Cache
	ttl   time.Duration
	opts  *brandfolder.PaginationOptions
}

// NewCustomFieldsClient creates a new CustomFieldsClient.
func NewCustomFieldsClient(httpClient *internalhttp.Client, cache brandfolder.Cache, opts *brandfolder.PaginationOptions) *CustomFieldsClient {
	return &CustomFieldsClient{
		pager: pager{httpClient: httpClient},
		cache: cache,
		ttl:   constants.DefaultCacheTTL,
		opts:  opts,
	}
}

// ListKeys fetches one page of a brandfolder's custom field keys.
func (c *CustomFieldsClient) ListKeys(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/custom_field_keys", brandfolderKey)

	page, err := c.getPage(ctx, path, params)
	if err != nil {
		return nil, fmt.Errorf("listing custom field keys: %w", err)
	}

	page.Normalize(nil)

	return page, nil
}

// ListAllKeys fetches and merges every page of a brandfolder's custom
// field keys.
func (c *CustomFieldsClient) ListAllKeys(ctx context.Context, brandfolderKey string, params *brandfolder.QueryParams) (*brandfolder.Page, error) {
	path := fmt.Sprintf("/brandfolders/%s/custom_field_keys", brandfolderKey)

	page, err := brandfolder.FetchAllPages(ctx, c, path, params, c.opts)
	if err != nil {
		return nil, fmt.Errorf("listing all custom field keys: %w", err)
	}

	return page, nil
}

// KeyIDsByName resolves the brandfolder's custom field key names to key
// IDs. Results are cached; a stale or missing cache entry triggers one
// full key listing.
func (c *CustomFieldsClient) KeyIDsByName(ctx context.Context, brandfolderKey string) (map[string]string, error) {
	cacheKey := keyLookupPrefix + brandfolderKey

	if c.cache != nil {
		entry, err := c.cache.Get(ctx, cacheKey)
		if err == nil {
			keyIDs := make(map[string]string)

			err = json.Unmarshal(entry.Data, &keyIDs)
			if err == nil {
				return keyIDs, nil
			}
		}
	}

	page, err := c.ListAllKeys(ctx, brandfolderKey, nil)
	if err != nil {
		return nil, fmt.Errorf("resolving custom field key IDs: %w", err)
	}

	keyIDs := make(map[string]string, len(page.Data))
	for i := range page.Data {
		name := page.Data[i].Name()
		if name == "" {
			continue
		}

		keyIDs[name] = page.Data[i].ID
	}

	c.storeLookup(ctx, cacheKey, keyIDs)

	return keyIDs, nil
}

// storeLookup caches the lookup map. Cache failures are invisible to
// callers; the next resolution just pays for another listing.
func (c *CustomFieldsClient) storeLookup(ctx context.Context, cacheKey string, keyIDs map[string]string) {
	if c.cache == nil {
		return
	}

	data, err := json.Marshal(keyIDs)
	if err != nil {
		return
	}

	_ = c.cache.Set(ctx, cacheKey, &brandfolder.CacheEntry{
		Data:      data,
		ExpiresAt: time.Now().Add(c.ttl),
	})
}

// InvalidateKeyLookup drops the cached name-to-ID mapping for a
// brandfolder. Called after key mutations so stale IDs cannot be served.
func (c *CustomFieldsClient) InvalidateKeyLookup(ctx context.Context, brandfolderKey string) {
	if c.cache == nil {
		return
	}

	_ = c.cache.Delete(ctx, keyLookupPrefix+brandfolderKey)
}

type customFieldKeyAttributes struct {
	Name string `json:"name"`
}

// CreateKeys creates custom field keys on a brandfolder.
func (c *CustomFieldsClient) CreateKeys(ctx context.Context, brandfolderKey string, names []string) (*brandfolder.Page, error) {
	attributes := make([]customFieldKeyAttributes, 0, len(names))
	for _, name := range names {
		attributes = append(attributes, customFieldKeyAttributes{Name: name})
	}

	path := fmt.Sprintf("/brandfolders/%s/custom_field_keys", brandfolderKey)

	page, err := c.postPage(ctx, path, wrapAttributes(attributes))
	if err != nil {
		return nil, fmt.Errorf("creating custom field keys: %w", err)
	}

	c.InvalidateKeyLookup(ctx, brandfolderKey)

	return page, nil
}

// DeleteKey deletes a custom field key and every value stored under it.
func (c *CustomFieldsClient) DeleteKey(ctx context.Context, keyID string) error {
	err := c.delete(ctx, "/custom_field_keys/"+keyID)
	if err != nil {
		return fmt.Errorf("deleting custom field key: %w", err)
	}

	return nil
}

// customFieldValuePayload attaches values to assets under one key.
type customFieldValuePayload struct {
	Data []customFieldValueEntry `json:"data"`
}

type customFieldValueEntry struct {
	Attributes struct {
		Value interface{} `json:"value"`
	} `json:"attributes"`
	Relationships struct {
		Asset struct {
			Data brandfolder.Ref `json:"data"`
		} `json:"asset"`
	} `json:"relationships"`
}

// AddValues stores values under a custom field key, one per target asset.
func (c *CustomFieldsClient) AddValues(ctx context.Context, keyID string, values []brandfolder.CustomFieldValueInput) (*brandfolder.Page, error) {
	payload := &customFieldValuePayload{Data: make([]customFieldValueEntry, 0, len(values))}

	for _, value := range values {
		var entry customFieldValueEntry
		entry.Attributes.Value = value.Value
		entry.Relationships.Asset.Data = brandfolder.Ref{ID: value.AssetKey, Type: "assets"}
		payload.Data = append(payload.Data, entry)
	}

	path := fmt.Sprintf("/custom_field_keys/%s/custom_field_values", keyID)

	page, err := c.postPage(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("adding custom field values: %w", err)
	}

	return page, nil
}
