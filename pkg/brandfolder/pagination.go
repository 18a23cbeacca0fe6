package brandfolder

import (
	"context"
	"fmt"

	"github.com/orientier/brandfolder-go/internal/constants"
)

// PageLister issues one list request against a path. Implemented by the
// per-resource clients; tests supply fakes.
type PageLister interface {
	ListPage(ctx context.Context, path string, params *QueryParams) (*Page, error)
}

// PaginationOptions configures aggregation behavior.
type PaginationOptions struct {
	// PageSize is the "per" parameter applied when params carry none
	PageSize int

	// MaxPages bounds the number of requests issued, as a circuit
	// breaker against cyclic next_page chains
	MaxPages int

	// KeyIDs optionally maps custom field names to key IDs for the
	// per-page normalization pass
	KeyIDs map[string]string
}

// DefaultPaginationOptions returns the standard aggregation settings.
func DefaultPaginationOptions() *PaginationOptions {
	return &PaginationOptions{
		PageSize: constants.DefaultPageSize,
		MaxPages: constants.DefaultMaxPages,
	}
}

// FetchAllPages drives the lister across every page of a list endpoint and
// merges the results into one logical page. Aggregation is all-or-nothing:
// any page failing discards the pages already collected and returns the
// error.
//
// Every page is normalized as it arrives, so the full included table never
// has to be held unprocessed across pages. Data and Included are
// concatenated in arrival order; duplicate included entries across pages
// are tolerated, not deduplicated. The aggregate's Included is nil unless
// at least one included resource was collected, matching the shape of
// single-page responses without side-loaded data.
//
// Hitting MaxPages stops the loop and marks the aggregate Truncated
// instead of reporting an indistinguishable "done".
func FetchAllPages(ctx context.Context, lister PageLister, path string, params *QueryParams, opts *PaginationOptions) (*Page, error) {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}

	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = constants.DefaultMaxPages
	}

	query := params.Clone()
	if query.Per <= 0 {
		query.Per = pageSize
	}

	query.Page = 1

	aggregate := &Page{}

	for requests := 0; ; {
		page, err := lister.ListPage(ctx, path, query)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", query.Page, err)
		}

		page.Normalize(opts.KeyIDs)

		aggregate.Data = append(aggregate.Data, page.Data...)
		aggregate.Included = append(aggregate.Included, page.Included...)

		// Copy the meta so clearing next_page below cannot reach back
		// into the lister's page.
		aggregate.Meta = nil
		if page.Meta != nil {
			meta := *page.Meta
			aggregate.Meta = &meta
		}

		if page.Meta == nil || page.Meta.NextPage == nil {
			break
		}

		requests++
		if requests >= maxPages {
			aggregate.Truncated = true

			break
		}

		query.Page = *page.Meta.NextPage
	}

	if aggregate.Meta != nil {
		// The merged result is a complete (or truncated) listing; a
		// stale next_page would invite a second, pointless walk.
		aggregate.Meta.NextPage = nil
	}

	return aggregate, nil
}

// PageIterator walks a paginated list endpoint one resource at a time,
// fetching pages lazily.
type PageIterator struct {
	ctx     context.Context
	lister  PageLister
	path    string
	params  *QueryParams
	keyIDs  map[string]string
	current []Resource
	index   int
	next    *int
	started bool
	done    bool
	err     error
}

// NewPageIterator creates an iterator over the given list endpoint.
func NewPageIterator(ctx context.Context, lister PageLister, path string, params *QueryParams) *PageIterator {
	query := params.Clone()
	if query.Per <= 0 {
		query.Per = constants.DefaultPageSize
	}

	query.Page = 1

	return &PageIterator{
		ctx:    ctx,
		lister: lister,
		path:   path,
		params: query,
	}
}

// WithKeyIDs supplies a custom field name to key ID mapping for the
// per-page normalization.
func (it *PageIterator) WithKeyIDs(keyIDs map[string]string) *PageIterator {
	it.keyIDs = keyIDs

	return it
}

// HasNext reports whether another resource is available without consuming
// it. The first page is fetched on demand.
func (it *PageIterator) HasNext() bool {
	if it.index < len(it.current) {
		return true
	}

	if it.done {
		return false
	}

	err := it.fetch()
	if err != nil {
		// Surface the failure on the subsequent Next call
		return true
	}

	return it.index < len(it.current) || !it.done
}

// Next returns the next resource, fetching the next page when the current
// one is exhausted.
func (it *PageIterator) Next() (*Resource, error) {
	for it.index >= len(it.current) {
		if it.err != nil {
			return nil, it.err
		}

		if it.done {
			return nil, ErrNoMoreItems
		}

		err := it.fetch()
		if err != nil {
			return nil, err
		}
	}

	resource := &it.current[it.index]
	it.index++

	return resource, nil
}

// All collects every remaining resource.
func (it *PageIterator) All() ([]Resource, error) {
	var all []Resource

	for it.HasNext() {
		resource, err := it.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, *resource)
	}

	return all, nil
}

// ForEach applies fn to every remaining resource, stopping on the first
// error.
func (it *PageIterator) ForEach(fn func(Resource) error) error {
	for it.HasNext() {
		resource, err := it.Next()
		if err != nil {
			return err
		}

		err = fn(*resource)
		if err != nil {
			return err
		}
	}

	return nil
}

func (it *PageIterator) fetch() error {
	if it.started {
		if it.next == nil {
			it.done = true

			return nil
		}

		it.params.Page = *it.next
	}

	page, err := it.lister.ListPage(it.ctx, it.path, it.params)
	if err != nil {
		it.done = true
		it.err = fmt.Errorf("fetching page %d: %w", it.params.Page, err)

		return it.err
	}

	page.Normalize(it.keyIDs)

	it.started = true
	it.current = page.Data
	it.index = 0
	it.next = nil

	if page.Meta != nil {
		it.next = page.Meta.NextPage
	}

	if it.next == nil {
		it.done = true
	}

	return nil
}

// PageResult is one page delivered by StreamPages.
type PageResult struct {
	Page *Page
	Err  error
}

// StreamPages fetches pages sequentially and delivers each on the returned
// channel, which is closed after the last page or the first error. The
// context cancels the walk between pages.
func StreamPages(ctx context.Context, lister PageLister, path string, params *QueryParams, opts *PaginationOptions) <-chan PageResult {
	if opts == nil {
		opts = DefaultPaginationOptions()
	}

	results := make(chan PageResult, constants.SmallBufferSize)

	go func() {
		defer close(results)

		query := params.Clone()
		if query.Per <= 0 {
			query.Per = opts.PageSize
		}

		if query.Per <= 0 {
			query.Per = constants.DefaultPageSize
		}

		query.Page = 1

		maxPages := opts.MaxPages
		if maxPages <= 0 {
			maxPages = constants.DefaultMaxPages
		}

		for requests := 0; ; {
			page, err := lister.ListPage(ctx, path, query)
			if err != nil {
				results <- PageResult{Err: fmt.Errorf("fetching page %d: %w", query.Page, err)}

				return
			}

			page.Normalize(opts.KeyIDs)

			select {
			case results <- PageResult{Page: page}:
			case <-ctx.Done():
				return
			}

			if page.Meta == nil || page.Meta.NextPage == nil {
				return
			}

			requests++
			if requests >= maxPages {
				return
			}

			query.Page = *page.Meta.NextPage
		}
	}()

	return results
}
