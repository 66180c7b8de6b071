package service

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PageSize is the number of rows shown per list page.
const PageSize = 5

// SortKind selects how a sort field is compared.
type SortKind int

const (
	// SortText compares with locale-aware collation.
	SortText SortKind = iota
	// SortDate compares parsed timestamps.
	SortDate
)

// SortField describes one sortable column.
type SortField[T any] struct {
	Kind  SortKind
	Value func(T) string
}

// ListSpec describes how a collection is searched and sorted.
type ListSpec[T any] struct {
	// SearchFields returns the values a query is matched against.
	SearchFields func(T) []string
	SortFields   map[string]SortField[T]
	DefaultSort  string
}

// Sort is the single active sort column and its direction.
type Sort struct {
	Key  string
	Desc bool
}

// Toggle returns the sort produced by clicking the column key: the same key
// flips the direction, another key switches to it ascending.
func (s Sort) Toggle(key string) Sort {
	if s.Key == key {
		return Sort{Key: key, Desc: !s.Desc}
	}
	return Sort{Key: key}
}

// Dir returns "asc" or "desc".
func (s Sort) Dir() string {
	if s.Desc {
		return "desc"
	}
	return "asc"
}

// Query is the list state carried in the URL.
type Query struct {
	Search   string
	Sort     Sort
	Page     int
	PageSize int
}

// Result is one page of a filtered, sorted collection.
type Result[T any] struct {
	Items     []T
	Query     Query
	Total     int
	Page      int
	PageCount int
	PageSize  int
	Offset    int
	HasPrev   bool
	HasNext   bool
}

// Pages returns the page numbers 1..PageCount.
func (r Result[T]) Pages() []int {
	pages := make([]int, r.PageCount)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// PrevPage returns the page before the current one.
func (r Result[T]) PrevPage() int { return r.Page - 1 }

// NextPage returns the page after the current one.
func (r Result[T]) NextPage() int { return r.Page + 1 }

// Apply filters, sorts and paginates records. records is not modified.
func Apply[T any](records []T, spec ListSpec[T], q Query) Result[T] {
	filtered := filter(records, spec, q.Search)

	if q.Sort.Key == "" {
		q.Sort.Key = spec.DefaultSort
	}
	if field, ok := spec.SortFields[q.Sort.Key]; ok {
		sortRecords(filtered, field, q.Sort.Desc)
	} else {
		q.Sort = Sort{}
	}

	size := q.PageSize
	if size <= 0 {
		size = PageSize
	}
	q.PageSize = size

	total := len(filtered)
	pageCount := (total + size - 1) / size
	page := q.Page
	if page < 1 {
		page = 1
	}
	if pageCount > 0 && page > pageCount {
		page = pageCount
	}
	q.Page = page

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	return Result[T]{
		Items:     filtered[start:end],
		Query:     q,
		Total:     total,
		Page:      page,
		PageCount: pageCount,
		PageSize:  size,
		Offset:    start,
		HasPrev:   page > 1,
		HasNext:   page*size < total,
	}
}

func filter[T any](records []T, spec ListSpec[T], search string) []T {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]T, 0, len(records))
	for _, r := range records {
		if needle == "" || spec.SearchFields == nil || matches(spec.SearchFields(r), needle) {
			out = append(out, r)
		}
	}
	return out
}

func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func sortRecords[T any](records []T, field SortField[T], desc bool) {
	var compare func(a, b T) int
	switch field.Kind {
	case SortDate:
		compare = func(a, b T) int {
			return ParseDate(field.Value(a)).Compare(ParseDate(field.Value(b)))
		}
	default:
		// Collators are not safe for concurrent use, so each sort gets its own.
		col := collate.New(language.English)
		compare = func(a, b T) int {
			return col.CompareString(field.Value(a), field.Value(b))
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return compare(records[j], records[i]) < 0
		}
		return compare(records[i], records[j]) < 0
	})
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 03:04 PM",
}

// ParseDate parses the date formats stored by the dashboard forms.
// Unparseable values return the zero time and sort first.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
