package paginator

// PaginateQuery is a page request as clients send it.
type PaginateQuery struct {
	Page  int   `json:"page"`
	Limit int64 `json:"limit"`
}

// Paginator describes one page of search hits. Total may already be capped
// to what the engine lets a client page through.
type Paginator struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
}

// PaginatorResponse adds the derived page fields returned to clients.
type PaginatorResponse struct {
	Total       int64 `json:"total"`
	Count       int64 `json:"count"`
	PerPage     int64 `json:"per_page"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}
