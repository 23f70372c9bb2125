package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"bagelhole-directory/internal/domains/review/model"
)

func ratings(values ...float64) []model.Review {
	out := make([]model.Review, len(values))
	for i, v := range values {
		out[i] = model.Review{Rating: v}
	}
	return out
}

func TestAggregate_EmptyIsNoRatingsYet(t *testing.T) {
	got := Aggregate(nil, ExcludeInvalid)

	assert.Equal(t, 0.0, got.Average)
	assert.Equal(t, 0, got.Count)
	assert.False(t, got.HasRatings())
	for b := 1; b <= 5; b++ {
		assert.Equal(t, 0, got.Histogram[b])
	}
}

func TestAggregate_AverageUsesUnroundedRatings(t *testing.T) {
	got := Aggregate(ratings(4.5, 3.5, 5), ExcludeInvalid)

	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 13.0/3.0, got.Average, 1e-9)
}

func TestAggregate_HistogramRoundsHalfUp(t *testing.T) {
	got := Aggregate(ratings(1, 1.5, 2.4, 4.5, 5), ExcludeInvalid)

	assert.Equal(t, 1, got.Histogram[1])
	assert.Equal(t, 2, got.Histogram[2]) // 1.5 and 2.4
	assert.Equal(t, 0, got.Histogram[3])
	assert.Equal(t, 0, got.Histogram[4])
	assert.Equal(t, 2, got.Histogram[5]) // 4.5 and 5
}

func TestAggregate_HistogramSumEqualsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		n := rng.Intn(30)
		in := make([]model.Review, n)
		for j := range in {
			in[j] = model.Review{Rating: 1 + rng.Float64()*4}
		}

		got := Aggregate(in, ExcludeInvalid)

		sum := 0
		for b := 1; b <= 5; b++ {
			sum += got.Histogram[b]
		}
		assert.Equal(t, got.Count, sum)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	in := ratings(5, 1, 3.5, 2, 4.5, 4.5, 1.5)

	want := Aggregate(in, ExcludeInvalid)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]model.Review(nil), in...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Aggregate(shuffled, ExcludeInvalid))
	}
}

func TestAggregate_ExcludeInvalidDropsOutOfDomain(t *testing.T) {
	got := Aggregate(ratings(0, 4, 7), ExcludeInvalid)

	assert.Equal(t, 1, got.Count)
	assert.InDelta(t, 4.0, got.Average, 1e-9)
	assert.Equal(t, 1, got.Histogram[4])
}

func TestAggregate_LegacyPolicyCountsInvalid(t *testing.T) {
	// The historical behavior: an unrated seed (rating 0) still counts
	// and drags the average down.
	got := Aggregate(ratings(0, 4), CountInvalidAsZero)

	assert.Equal(t, 2, got.Count)
	assert.InDelta(t, 2.0, got.Average, 1e-9)
	assert.Equal(t, 1, got.Histogram[1], "rating 0 clamps into the 1-star bucket")
	assert.Equal(t, 1, got.Histogram[4])
}

func TestBucket_Clamps(t *testing.T) {
	assert.Equal(t, 1, Bucket(0))
	assert.Equal(t, 1, Bucket(-3))
	assert.Equal(t, 2, Bucket(1.5))
	assert.Equal(t, 3, Bucket(2.5))
	assert.Equal(t, 5, Bucket(4.5))
	assert.Equal(t, 5, Bucket(9))
}
