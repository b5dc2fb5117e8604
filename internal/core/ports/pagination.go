package ports

// PageRequest is the common paging input for list endpoints.
type PageRequest struct {
	Page  int // 1-based
	Limit int // rows per page
}

// Normalize applies the documented defaults: page >= 1 (default 1),
// limit >= 1 (default 10).
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

// Offset returns the row offset for the normalized request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata block attached to every paginated response.
// A page past the end of the data is not an error: items are empty and the
// metadata stays valid.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

// NewPagination computes totalPages = ceil(total/limit).
func NewPagination(req PageRequest, total int64) Pagination {
	req = req.Normalize()
	return Pagination{
		CurrentPage: req.Page,
		TotalPages:  int((total + int64(req.Limit) - 1) / int64(req.Limit)),
		TotalItems:  total,
	}
}
