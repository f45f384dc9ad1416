package models

import (
	"math"
	"strings"
)

// Sort orders accepted by list endpoints.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Listing defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 3
)

// ListParams are the query parameters shared by the catalog list endpoints.
type ListParams struct {
	Page      int    `form:"page,default=1" binding:"min=1" example:"1"`
	Limit     int    `form:"limit,default=3" binding:"min=1" example:"3"`
	SortBy    string `form:"sortBy" example:"title"`
	SortOrder string `form:"sortOrder,default=ASC" binding:"sortorder" example:"ASC"`
	Search    string `form:"search" example:"incep"`
	Filters   string `form:"filters" example:"{\"heightMin\":170,\"birthdayMax\":\"1990-01-01\"}"`
}

// Normalize fills zero values with the listing defaults.
func (p *ListParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.SortOrder == "" {
		p.SortOrder = SortAsc
	}
}

// Offset is the number of documents skipped before the page starts.
// It saturates at math.MaxInt64, so an out of range page is simply empty.
func (p ListParams) Offset() int64 {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	skipped, limit := int64(p.Page-1), int64(p.Limit)
	if skipped > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return skipped * limit
}

// Descending reports whether the requested order is DESC.
func (p ListParams) Descending() bool {
	return strings.EqualFold(p.SortOrder, SortDesc)
}

// Pagination contains pagination metadata.
type Pagination struct {
	Total       int64 `json:"total" example:"42"`
	CurrentPage int   `json:"current_page" example:"1"`
	Limit       int   `json:"limit" example:"3"`
	TotalPages  int   `json:"total_pages" example:"14"`
}

// NewPagination computes total pages as ceil(total/limit).
func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(total / int64(limit))
		if total%int64(limit) != 0 {
			totalPages++
		}
	}
	return Pagination{
		Total:       total,
		CurrentPage: page,
		Limit:       limit,
		TotalPages:  totalPages,
	}
}

// Page is one page of a catalog listing.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPage builds a Page, never returning a nil data slice.
func NewPage[T any](data []T, total int64, page, limit int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		Pagination: NewPagination(total, page, limit),
	}
}
