package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// SubmitReviewRequest is a new review submission bound for the pending
// queue. Photos are already normalized encoded images.
type SubmitReviewRequest struct {
	RestaurantID string
	Name         string
	Rating       float64
	Text         string
	Photos       []string
}

// Validate checks submission fields in form order and reports the first
// failure, so the caller can point at one field.
func (r SubmitReviewRequest) Validate() error {
	checks := []struct {
		field string
		err   error
	}{
		{"restaurantId", validation.Validate(r.RestaurantID, validation.Required)},
		{"name", validation.Validate(strings.TrimSpace(r.Name), validation.Required)},
		// Required catches the unset (zero) rating, which threshold
		// rules alone would skip.
		{"rating", validation.Validate(r.Rating,
			validation.Required,
			validation.Min(MinRating),
			validation.Max(MaxRating))},
		{"text", validation.Validate(strings.TrimSpace(r.Text),
			validation.Required,
			validation.RuneLength(1, MaxTextLength))},
		{"photos", validation.Validate(r.Photos, validation.Length(0, MaxPhotos))},
	}

	for _, c := range checks {
		if c.err != nil {
			return NewValidationError(c.field, c.err.Error())
		}
	}
	return nil
}

// =====================================================
// DISPLAY DTOs
// =====================================================

// Display sort keys
const (
	SortNewest     = "newest"
	SortHighest    = "highest"
	SortLowest     = "lowest"
	SortMostPhotos = "photos"
)

// DisplayControls filters and orders a review list for presentation.
type DisplayControls struct {
	Sort           string
	Stars          int // 0 = all, else exact rounded bucket
	WithPhotosOnly bool
}

func (c *DisplayControls) Validate() error {
	if c.Sort == "" {
		c.Sort = SortNewest
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Sort, validation.In(SortNewest, SortHighest, SortLowest, SortMostPhotos)),
		validation.Field(&c.Stars, validation.Min(0), validation.Max(5)),
	)
}

// RatingSummary is the aggregate shown next to a restaurant. Count of
// zero is the distinguishable "no ratings yet" state, not a zero
// rating.
type RatingSummary struct {
	Average   float64
	Count     int
	Histogram map[int]int // bucket 1..5 -> count
}

// HasRatings reports whether any valid rating entered the aggregate.
func (s RatingSummary) HasRatings() bool {
	return s.Count > 0
}

// ReviewPhoto is one photo in the photo strip, with attribution.
type ReviewPhoto struct {
	Src string
	By  string
}

// PhotoFailure reports one file of a normalization batch that was
// skipped.
type PhotoFailure struct {
	Index int // position in the submitted batch
	Err   error
}
