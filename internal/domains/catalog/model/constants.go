package model

const (
	// Listing
	PageSize = 15

	// Sort keys
	SortByName      = "name"
	SortByPriceLow  = "priceLow"
	SortByPriceHigh = "priceHigh"
	SortByHood      = "neighborhood"
)
