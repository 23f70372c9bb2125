package service

import (
	"math"

	"bagelhole-directory/internal/domains/review/model"
)

// =====================================================
// AGGREGATOR
// =====================================================

// AggregatePolicy decides what happens to reviews whose rating falls
// outside [1,5].
type AggregatePolicy int

const (
	// ExcludeInvalid drops out-of-domain ratings from the aggregate
	// entirely. This is the default.
	ExcludeInvalid AggregatePolicy = iota

	// CountInvalidAsZero counts out-of-domain ratings toward the
	// total while contributing their raw value to the sum, which
	// skews the average. Kept only for parity with the historical
	// behavior.
	CountInvalidAsZero
)

// Aggregate computes the display statistics for a review set: the
// arithmetic mean of raw (unrounded) ratings, the count, and a 5-bucket
// histogram of half-up-rounded ratings. Pure and order-independent.
//
// An empty input yields the all-zero "no ratings yet" summary.
func Aggregate(reviews []model.Review, policy AggregatePolicy) model.RatingSummary {
	histogram := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}

	count := 0
	sum := 0.0
	for _, rv := range reviews {
		if !model.ValidRating(rv.Rating) && policy == ExcludeInvalid {
			continue
		}
		histogram[Bucket(rv.Rating)]++
		count++
		sum += rv.Rating
	}

	if count == 0 {
		return model.RatingSummary{Histogram: histogram}
	}

	return model.RatingSummary{
		Average:   sum / float64(count),
		Count:     count,
		Histogram: histogram,
	}
}

// Bucket rounds a rating half-up to its star bucket, clamped to [1,5].
func Bucket(rating float64) int {
	b := int(math.Round(rating))
	if b < 1 {
		return 1
	}
	if b > 5 {
		return 5
	}
	return b
}
