package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"bagelhole-directory/internal/domains/catalog/model"
)

// =====================================================
// JSON FILE IMPLEMENTATION
// =====================================================

type jsonFileRepository struct {
	path string
}

func NewJSONFileRepository(path string) CatalogRepository {
	return &jsonFileRepository{path: path}
}

// Load reads and normalizes the catalog file. Any failure to produce a
// JSON array is terminal: there is no partial catalog.
func (r *jsonFileRepository) Load(ctx context.Context) ([]model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, model.NewInvalidCatalogError(fmt.Errorf("read %s: %w", r.path, err))
	}

	var raw []model.Restaurant
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, model.NewInvalidCatalogError(fmt.Errorf("catalog must be a JSON array: %w", err))
	}

	out := make([]model.Restaurant, 0, len(raw))
	for _, rst := range raw {
		if rst.ID == "" || rst.Name == "" {
			continue
		}
		normalize(&rst)
		out = append(out, rst)
	}

	return out, nil
}

// normalize fills the collection fields so callers never see nil.
func normalize(r *model.Restaurant) {
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if r.Amenities == nil {
		r.Amenities = []string{}
	}
	if r.Features == nil {
		r.Features = map[string]bool{}
	}
	if r.Highlights == nil {
		r.Highlights = []model.Highlight{}
	}
	if r.SeedReviews == nil {
		r.SeedReviews = []model.SeedReview{}
	}
}
