package repository

import (
	"context"

	"bagelhole-directory/internal/domains/catalog/model"
)

// =====================================================
// CATALOG REPOSITORY INTERFACE
// =====================================================

type CatalogRepository interface {
	// Load reads the full catalog from its static source. Entries
	// without an id or name are dropped; a source that is not a JSON
	// array fails with ErrInvalidCatalog.
	Load(ctx context.Context) ([]model.Restaurant, error)
}
