package service

import (
	"sort"

	"bagelhole-directory/internal/domains/review/model"
)

// =====================================================
// DISPLAY CONTROLS
// =====================================================
// Pure helpers the presentation layer applies on top of DisplayReviews.

// ApplyControls filters and sorts a review list for display. The input
// slice is left untouched.
func ApplyControls(reviews []model.Review, controls model.DisplayControls) ([]model.Review, error) {
	if err := controls.Validate(); err != nil {
		return nil, err
	}

	out := make([]model.Review, 0, len(reviews))
	for _, rv := range reviews {
		if controls.Stars != 0 && Bucket(rv.Rating) != controls.Stars {
			continue
		}
		if controls.WithPhotosOnly && len(rv.Photos) == 0 {
			continue
		}
		out = append(out, rv)
	}

	newerFirst := func(i, j int) bool {
		return out[i].CreatedAt > out[j].CreatedAt
	}

	switch controls.Sort {
	case model.SortHighest:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return newerFirst(i, j)
		})
	case model.SortLowest:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating < out[j].Rating
			}
			return newerFirst(i, j)
		})
	case model.SortMostPhotos:
		sort.SliceStable(out, func(i, j int) bool {
			if len(out[i].Photos) != len(out[j].Photos) {
				return len(out[i].Photos) > len(out[j].Photos)
			}
			return newerFirst(i, j)
		})
	default: // SortNewest
		sort.SliceStable(out, newerFirst)
	}

	return out, nil
}

// CollectPhotos flattens all review photos into a strip with reviewer
// attribution, in review order.
func CollectPhotos(reviews []model.Review) []model.ReviewPhoto {
	var photos []model.ReviewPhoto
	for _, rv := range reviews {
		for _, src := range rv.Photos {
			photos = append(photos, model.ReviewPhoto{Src: src, By: rv.Name})
		}
	}
	return photos
}
