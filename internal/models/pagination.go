package models

// All is the filter sentinel meaning "no filter on this field".
const All = "all"

// DefaultPerPage is used when neither the filter nor the backend supplies a page size.
const DefaultPerPage = 15

// PaginatedResponse is the normalised shape every list operation returns.
type PaginatedResponse[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// HasNext reports whether another page exists after the current one.
func (p *PaginatedResponse[T]) HasNext() bool {
	return p != nil && p.CurrentPage < p.LastPage
}

// ListParams holds the keys shared by every list filter.
type ListParams struct {
	Search    string `query:"search"`
	Page      int    `query:"page"`
	PerPage   int    `query:"per_page"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
}

// DateRange narrows list results to an inclusive date window.
type DateRange struct {
	From string `query:"date_from"`
	To   string `query:"date_to"`
}

// PageSize returns the requested page size, zero when unset.
func (p ListParams) PageSize() int {
	return p.PerPage
}

// NewPage returns a page holding data with metadata defaults for a response
// that carried none: first and last page 1, total 0.
func NewPage[T any](data []T, perPage int) *PaginatedResponse[T] {
	if data == nil {
		data = []T{}
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	return &PaginatedResponse[T]{
		Data:        data,
		CurrentPage: 1,
		LastPage:    1,
		PerPage:     perPage,
		Total:       0,
	}
}
