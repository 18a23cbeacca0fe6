package brandfolder

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryParams represents common list options for API requests.
type QueryParams struct {
	// Page is the 1-based page number
	Page int

	// Per is the page size (the API's "per" parameter)
	Per int

	// Search is a brandfolder search expression
	Search string

	// Order is a sort expression, e.g. "name" or "-created_at"
	Order string

	// Include lists relationship names to side-load
	Include []string

	// Fields lists sparse fieldsets to request
	Fields []string

	// Filters holds any additional query parameters verbatim
	Filters map[string][]string
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithPer sets the page size.
func (q *QueryParams) WithPer(per int) *QueryParams {
	q.Per = per

	return q
}

// WithPage sets the page number.
func (q *QueryParams) WithPage(page int) *QueryParams {
	q.Page = page

	return q
}

// WithInclude appends relationship names to side-load.
func (q *QueryParams) WithInclude(names ...string) *QueryParams {
	q.Include = append(q.Include, names...)

	return q
}

// WithSearch sets the search expression.
func (q *QueryParams) WithSearch(search string) *QueryParams {
	q.Search = search

	return q
}

// WithFilter adds a verbatim query parameter.
func (q *QueryParams) WithFilter(key string, values ...string) *QueryParams {
	if q.Filters == nil {
		q.Filters = make(map[string][]string)
	}

	q.Filters[key] = append(q.Filters[key], values...)

	return q
}

// ToValues converts the parameters to url.Values.
func (q *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	if q.Per > 0 {
		values.Set("per", strconv.Itoa(q.Per))
	}

	if q.Search != "" {
		values.Set("search", q.Search)
	}

	if q.Order != "" {
		values.Set("order", q.Order)
	}

	if len(q.Include) > 0 {
		values.Set("include", strings.Join(q.Include, ","))
	}

	if len(q.Fields) > 0 {
		values.Set("fields", strings.Join(q.Fields, ","))
	}

	for key, vals := range q.Filters {
		values.Set(key, strings.Join(vals, ","))
	}

	return values
}

// Clone returns a copy safe to mutate without affecting the original.
func (q *QueryParams) Clone() *QueryParams {
	if q == nil {
		return NewQueryParams()
	}

	clone := *q
	clone.Include = append([]string(nil), q.Include...)
	clone.Fields = append([]string(nil), q.Fields...)

	if q.Filters != nil {
		clone.Filters = make(map[string][]string, len(q.Filters))
		for key, vals := range q.Filters {
			clone.Filters[key] = append([]string(nil), vals...)
		}
	}

	return &clone
}

// String renders the encoded query, useful in logs.
func (q *QueryParams) String() string {
	return fmt.Sprintf("%v", q.ToValues().Encode())
}
