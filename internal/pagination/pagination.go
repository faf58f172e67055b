// Package pagination holds the page/per_page arithmetic shared by every
// list endpoint.
package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Query carries the normalized pagination parameters of a list request.
type Query struct {
	Page    int `form:"page,default=1"`
	PerPage int `form:"per_page,default=10"`
}

// Normalize clamps the parameters into their valid ranges: page >= 1,
// 1 <= per_page <= 100.
func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
}

// Offset returns the row offset for the query. Saturating: a page below 1
// never yields a negative offset.
func (q Query) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}

// Limit returns the row limit for the query.
func (q Query) Limit() int {
	return q.PerPage
}

// Meta is the pagination block of a list response envelope.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int64 `json:"total_pages"`
}

// NewMeta computes total_pages = ceil(total / per_page); zero when total is
// zero.
func NewMeta(total int64, q Query) Meta {
	var totalPages int64
	if q.PerPage > 0 {
		totalPages = (total + int64(q.PerPage) - 1) / int64(q.PerPage)
	}
	return Meta{
		Total:      total,
		Page:       q.Page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
	}
}
