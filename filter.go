package modio

import (
	"fmt"
	"net/url"
	"strings"
)

// Filter builds the query grammar used by list endpoints for filtering,
// sorting and pagination. Methods return the filter for chaining and may be
// combined freely:
//
//	filter := modio.NewFilter().
//	    Text("skyrim").
//	    Min("date_updated", 1577836800).
//	    Sort("downloads_total", true).
//	    Limit(20)
//
// Column names are passed through as-is; consult the API reference of the
// endpoint being queried for the filterable columns.
type Filter struct {
	v url.Values
}

// NewFilter returns an empty filter.
func NewFilter() *Filter {
	return &Filter{v: url.Values{}}
}

// values renders the filter to query parameters. Safe on a nil receiver.
func (f *Filter) values() url.Values {
	if f == nil {
		return nil
	}
	return f.v
}

func (f *Filter) set(key, suffix string, value any) *Filter {
	f.v.Set(key+suffix, fmt.Sprint(value))
	return f
}

// Text performs a lenient full-text search. Only available on endpoints
// whose resource has a name column.
func (f *Filter) Text(query string) *Filter {
	return f.set("_q", "", query)
}

// Equals keeps rows where the column equals value.
func (f *Filter) Equals(column string, value any) *Filter {
	return f.set(column, "", value)
}

// NotEquals keeps rows where the column does not equal value.
func (f *Filter) NotEquals(column string, value any) *Filter {
	return f.set(column, "-not", value)
}

// Like keeps rows where the column matches value, SQL LIKE style. Use "*"
// as the wildcard.
func (f *Filter) Like(column string, value any) *Filter {
	return f.set(column, "-lk", value)
}

// NotLike keeps rows where the column does not match value.
func (f *Filter) NotLike(column string, value any) *Filter {
	return f.set(column, "-not-lk", value)
}

// In keeps rows where the column equals any of the values.
func (f *Filter) In(column string, values ...any) *Filter {
	return f.set(column, "-in", joinValues(values))
}

// NotIn keeps rows where the column equals none of the values.
func (f *Filter) NotIn(column string, values ...any) *Filter {
	return f.set(column, "-not-in", joinValues(values))
}

// Max keeps rows where the column is smaller than or equal to value.
func (f *Filter) Max(column string, value any) *Filter {
	return f.set(column, "-max", value)
}

// Min keeps rows where the column is greater than or equal to value.
func (f *Filter) Min(column string, value any) *Filter {
	return f.set(column, "-min", value)
}

// SmallerThan keeps rows where the column is strictly smaller than value.
func (f *Filter) SmallerThan(column string, value any) *Filter {
	return f.set(column, "-st", value)
}

// GreaterThan keeps rows where the column is strictly greater than value.
func (f *Filter) GreaterThan(column string, value any) *Filter {
	return f.set(column, "-gt", value)
}

// BitwiseAnd keeps rows where the bit-field column has all bits of value
// set. Useful for columns like maturity_option and community_options.
func (f *Filter) BitwiseAnd(column string, value int) *Filter {
	return f.set(column, "-bitwise-and", value)
}

// Sort orders results by a top-level column, descending when reverse is true.
func (f *Filter) Sort(column string, reverse bool) *Filter {
	if reverse {
		column = "-" + column
	}
	return f.set("_sort", "", column)
}

// Limit caps the number of results returned per query.
func (f *Filter) Limit(limit int) *Filter {
	return f.set("_limit", "", limit)
}

// Offset skips the first offset results; combine with Limit to paginate.
func (f *Filter) Offset(offset int) *Filter {
	return f.set("_offset", "", offset)
}

func joinValues(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, ",")
}

// Pagination is the result-set metadata returned alongside list results.
type Pagination struct {
	// Count is the number of results in this response.
	Count int `json:"result_count"`
	// Limit is the maximum number of results per response.
	Limit int `json:"result_limit"`
	// Offset is the number of results skipped over.
	Offset int `json:"result_offset"`
	// Total is the total number of results for the endpoint.
	Total int `json:"result_total"`
}

// Max reports whether there are no results after this set.
func (p Pagination) Max() bool {
	return p.Offset+p.Count >= p.Total
}

// Min reports whether there are no results before this set.
func (p Pagination) Min() bool {
	return p.Offset == 0
}

// Next returns the offset for the following set of results, or the current
// offset when already at the end.
func (p Pagination) Next() int {
	if p.Max() {
		return p.Offset
	}
	return p.Offset + p.Limit
}

// Previous returns the offset for the preceding set of results, or the
// current offset when already at the start.
func (p Pagination) Previous() int {
	if p.Min() {
		return p.Offset
	}
	return p.Offset - p.Limit
}

// Page returns the current zero-based page number.
func (p Pagination) Page() int {
	if p.Limit == 0 {
		return 0
	}
	return p.Offset / p.Limit
}
