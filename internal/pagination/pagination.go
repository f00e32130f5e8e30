// Package pagination turns page/limit query parameters into offsets and
// builds the listing envelope returned to clients.
package pagination

import (
	"math"
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	// MaxOffset keeps offsets within the int32 range of the query layer.
	MaxOffset = math.MaxInt32
)

type Request struct {
	Page  int
	Limit int
}

// ParseRequest coerces raw query values. Absent, non-numeric or non-positive
// values fall back to the defaults instead of failing; limit is capped at MaxLimit
// and page at the last page whose offset fits in MaxOffset.
func ParseRequest(page, limit string) Request {
	r := Request{Page: DefaultPage, Limit: DefaultLimit}
	if l, err := strconv.Atoi(limit); err == nil && l >= 1 {
		r.Limit = min(l, MaxLimit)
	}
	if p, err := strconv.Atoi(page); err == nil && p >= 1 {
		r.Page = min(p, MaxPage(r.Limit))
	}
	return r
}

// MaxPage is the highest page whose offset does not exceed MaxOffset.
func MaxPage(limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	return MaxOffset/limit + 1
}

func (r Request) Offset() int {
	return (r.Page - 1) * r.Limit
}

type Result[T any] struct {
	TotalItems   int64   `json:"totalItems"`
	TotalPages   int     `json:"totalPages"`
	CurrentPage  *int    `json:"currentPage"`
	Items        []T     `json:"items"`
	NextPageLink *string `json:"nextPageLink"`
}

func TotalPages(totalItems int64, limit int) int {
	if totalItems <= 0 || limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(limit)))
}

// NewResult assembles the envelope. base is the listing path with any filter
// query already applied; page and limit are overwritten for the next link.
func NewResult[T any](req Request, totalItems int64, items []T, base url.URL) Result[T] {
	if items == nil {
		items = []T{}
	}
	res := Result[T]{
		TotalItems: totalItems,
		TotalPages: TotalPages(totalItems, req.Limit),
		Items:      items,
	}
	if res.TotalPages > 0 {
		page := req.Page
		res.CurrentPage = &page
	}
	if req.Page < res.TotalPages {
		link := Link(base, req.Page+1, req.Limit)
		res.NextPageLink = &link
	}
	return res
}

func Link(base url.URL, page, limit int) string {
	q := base.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	base.RawQuery = q.Encode()
	return base.String()
}
