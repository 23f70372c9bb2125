package service

import (
	"context"
	"sort"
	"strings"

	"bagelhole-directory/internal/domains/catalog/model"
	"bagelhole-directory/internal/domains/catalog/repository"
	"bagelhole-directory/internal/shared/utils"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type catalogService struct {
	// The catalog is loaded once at construction and read-only after
	// that, so the service carries a plain slice, not the repository.
	restaurants []model.Restaurant
	byID        map[string]*model.Restaurant
}

// NewCatalogService loads the catalog through repo. A load failure is
// terminal for the caller: there is no partial catalog.
func NewCatalogService(ctx context.Context, repo repository.CatalogRepository) (ServiceInterface, error) {
	restaurants, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.Restaurant, len(restaurants))
	for i := range restaurants {
		byID[restaurants[i].ID] = &restaurants[i]
	}

	return &catalogService{
		restaurants: restaurants,
		byID:        byID,
	}, nil
}

// =====================================================
// LIST
// =====================================================

func (s *catalogService) List(ctx context.Context, req model.ListRequest) (*model.ListResponse, error) {
	// Step 1: Validate request (also applies defaults)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Filter
	out := make([]model.Restaurant, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if req.Neighborhood != "" && r.Neighborhood != req.Neighborhood {
			continue
		}
		if req.Price != "" && r.Price != req.Price {
			continue
		}
		if req.Tag != "" && !contains(r.Tags, req.Tag) {
			continue
		}
		if !hasFeatures(r.Features, req.Features) {
			continue
		}
		out = append(out, r)
	}

	// Step 3: Sort
	sortRestaurants(out, req.Sort)

	// Step 4: Paginate
	total := len(out)
	totalPages := (total + model.PageSize - 1) / model.PageSize
	page := req.Page
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * model.PageSize
	end := start + model.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &model.ListResponse{
		Restaurants: out[start:end],
		Pagination: model.PaginationMeta{
			Page:       page,
			PageSize:   model.PageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

// =====================================================
// LOOKUPS
// =====================================================

func (s *catalogService) Get(ctx context.Context, id string) (*model.Restaurant, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, model.NewRestaurantNotFoundError(id)
	}
	return r, nil
}

func (s *catalogService) All(ctx context.Context) []model.Restaurant {
	return s.restaurants
}

func (s *catalogService) Neighborhoods(ctx context.Context) []string {
	hoods := make([]string, 0, len(s.restaurants))
	for _, r := range s.restaurants {
		if r.Neighborhood != "" {
			hoods = append(hoods, r.Neighborhood)
		}
	}
	hoods = utils.Uniq(hoods)
	sort.Strings(hoods)
	return hoods
}

func (s *catalogService) Tags(ctx context.Context) []string {
	var tags []string
	for _, r := range s.restaurants {
		tags = append(tags, r.Tags...)
	}
	tags = utils.Uniq(tags)
	sort.Strings(tags)
	return tags
}

// =====================================================
// HELPERS
// =====================================================

func contains(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}

func hasFeatures(features map[string]bool, wanted []string) bool {
	for _, f := range wanted {
		if !features[f] {
			return false
		}
	}
	return true
}

func sortRestaurants(rs []model.Restaurant, key string) {
	byName := func(a, b model.Restaurant) bool {
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}

	switch key {
	case model.SortByPriceLow:
		sort.SliceStable(rs, func(i, j int) bool {
			if pi, pj := model.PriceRank(rs[i].Price), model.PriceRank(rs[j].Price); pi != pj {
				return pi < pj
			}
			return byName(rs[i], rs[j])
		})
	case model.SortByPriceHigh:
		sort.SliceStable(rs, func(i, j int) bool {
			if pi, pj := model.PriceRank(rs[i].Price), model.PriceRank(rs[j].Price); pi != pj {
				return pi > pj
			}
			return byName(rs[i], rs[j])
		})
	case model.SortByHood:
		sort.SliceStable(rs, func(i, j int) bool {
			if rs[i].Neighborhood != rs[j].Neighborhood {
				return rs[i].Neighborhood < rs[j].Neighborhood
			}
			return byName(rs[i], rs[j])
		})
	default:
		sort.SliceStable(rs, func(i, j int) bool {
			return byName(rs[i], rs[j])
		})
	}
}
