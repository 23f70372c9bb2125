package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// ListRequest filters, sorts and paginates the catalog.
// Zero values mean "no filter".
type ListRequest struct {
	Neighborhood string
	Price        string
	Tag          string
	Features     []string // feature flags that must all be set
	Sort         string
	Page         int
}

// Validate checks filter values and applies listing defaults.
func (r *ListRequest) Validate() error {
	if r.Sort == "" {
		r.Sort = SortByName
	}
	if r.Page < 1 {
		r.Page = 1
	}
	return validation.ValidateStruct(r,
		validation.Field(&r.Price, validation.In("$", "$$", "$$$", "$$$$")),
		validation.Field(&r.Sort, validation.In(SortByName, SortByPriceLow, SortByPriceHigh, SortByHood)),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// ListResponse is one page of catalog results.
type ListResponse struct {
	Restaurants []Restaurant
	Pagination  PaginationMeta
}

// PaginationMeta pagination metadata
type PaginationMeta struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}
