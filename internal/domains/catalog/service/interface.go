package service

import (
	"context"

	"bagelhole-directory/internal/domains/catalog/model"
)

// =====================================================
// CATALOG SERVICE INTERFACE
// =====================================================

type ServiceInterface interface {
	// List filters, sorts and paginates the catalog.
	List(ctx context.Context, req model.ListRequest) (*model.ListResponse, error)

	// Get returns one restaurant by id, or ErrRestaurantNotFound.
	Get(ctx context.Context, id string) (*model.Restaurant, error)

	// All returns the whole catalog in load order.
	All(ctx context.Context) []model.Restaurant

	// Neighborhoods returns the distinct neighborhoods, sorted.
	Neighborhoods(ctx context.Context) []string

	// Tags returns the distinct tags, sorted.
	Tags(ctx context.Context) []string
}
