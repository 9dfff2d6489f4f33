package utils

// Pagination defaults applied when the request omits page or limit or sends
// a non-positive value.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageMetadata describes the position of a page within the full result set.
type PageMetadata struct {
	CurrentPage  int  `json:"current_page"`
	CurrentLimit int  `json:"current_limit"`
	TotalRecords int  `json:"total_records"`
	TotalPages   int  `json:"total_pages"`
	HasMore      bool `json:"has_more"`
}

// PagedResult wraps one page of records with its metadata.
type PagedResult[T any] struct {
	Data     []T          `json:"data"`
	Metadata PageMetadata `json:"metadata"`
}

// Paginate slices items into the contiguous window [limit*(page-1), limit*page).
// It never panics on empty input: out-of-range pages return an empty data
// slice with correct metadata, and total_pages is 0 when there are no records.
func Paginate[T any](page, limit int, items []T) PagedResult[T] {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	start := limit * (page - 1)
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	data := make([]T, 0, end-start)
	data = append(data, items[start:end]...)

	return PagedResult[T]{
		Data: data,
		Metadata: PageMetadata{
			CurrentPage:  page,
			CurrentLimit: limit,
			TotalRecords: total,
			TotalPages:   (total + limit - 1) / limit,
			HasMore:      page*limit < total,
		},
	}
}
