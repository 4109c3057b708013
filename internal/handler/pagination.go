package handler

// PaginationMeta defines the structure for pagination metadata. The catalog
// feed reports total pages, not total items, so that is what we carry.
type PaginationMeta struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PaginatedResponse defines the structure for a paginated list of any type.
type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// NewPaginatedResponse creates a new PaginatedResponse.
func NewPaginatedResponse[T any](data []T, totalPages, page, limit int) PaginatedResponse[T] {
	if totalPages < 1 {
		totalPages = 1
	}
	return PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    limit,
		},
	}
}
