package pagination

import "math"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params is a 1-based page request.
type Params struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"pageSize" json:"pageSize"`
}

// Normalize clamps the request into a usable range. A non-positive page size falls back to
// defaultSize, anything above maxSize is capped, and absurd page numbers are pulled back so the
// offset cannot overflow.
func (p Params) Normalize(defaultSize, maxSize int) Params {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}
	// keep Offset within int32 so it stays a valid OFFSET / $skip
	if lastPage := math.MaxInt32/p.PageSize + 1; p.Page > lastPage {
		p.Page = lastPage
	}
	return p
}

func (p Params) Offset() int { return (p.Page - 1) * p.PageSize }

func (p Params) Limit() int { return p.PageSize }

// Page is the {data, totalCount, totalPages} envelope every list operation returns.
type Page[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

func NewPage[T any](data []T, totalCount int64, p Params) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		TotalCount: totalCount,
		TotalPages: TotalPages(totalCount, p.PageSize),
	}
}

func TotalPages(totalCount int64, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// Map converts the page payload while keeping the counters.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, 0, len(p.Data))
	for _, item := range p.Data {
		out = append(out, fn(item))
	}
	return Page[U]{Data: out, TotalCount: p.TotalCount, TotalPages: p.TotalPages}
}
