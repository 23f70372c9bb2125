package model

// Restaurant is one entry of the static catalog. Loaded once per run,
// never mutated.
type Restaurant struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	LocationText string   `json:"locationText"`
	Neighborhood string   `json:"neighborhood"`
	Price        string   `json:"price"` // "$" .. "$$$$"
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`

	Tags      []string        `json:"tags"`
	Amenities []string        `json:"amenities"`
	Features  map[string]bool `json:"features"`

	Hero            string      `json:"hero"`
	EditorialReview string      `json:"bagelholeReview"`
	Highlights      []Highlight `json:"highlights"`

	// Seed reviews embedded at authoring time. Immutable, never
	// written back to the local store.
	SeedReviews []SeedReview `json:"initialReviews"`
}

// Highlight is an editorial callout shown on the restaurant page.
type Highlight struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// SeedReview is a review shipped inside the catalog. CreatedAt is an
// authoring-time date string; normalization happens in the review
// domain when seeds are merged with stored reviews.
type SeedReview struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Avatar    string   `json:"avatar"`
	Rating    float64  `json:"rating"`
	Text      string   `json:"text"`
	Photos    []string `json:"photos"`
	CreatedAt string   `json:"createdAt"`
}

// HasCoordinates reports whether the restaurant can be pinned on a map.
func (r *Restaurant) HasCoordinates() bool {
	return r.Lat != nil && r.Lng != nil
}

// PriceRank orders price tiers for sorting. Unknown tiers rank lowest.
func PriceRank(price string) int {
	switch price {
	case "$":
		return 1
	case "$$":
		return 2
	case "$$$":
		return 3
	case "$$$$":
		return 4
	default:
		return 0
	}
}
