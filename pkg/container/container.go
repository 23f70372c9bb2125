package container

import (
	"context"
	"fmt"

	"bagelhole-directory/internal/config"
	catalogRepo "bagelhole-directory/internal/domains/catalog/repository"
	catalogService "bagelhole-directory/internal/domains/catalog/service"
	reviewRepo "bagelhole-directory/internal/domains/review/repository"
	reviewService "bagelhole-directory/internal/domains/review/service"
	"bagelhole-directory/internal/infrastructure/database"
	"bagelhole-directory/internal/infrastructure/storage"
	"bagelhole-directory/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds the whole dependency graph, initialization order:
// config, infrastructure, repositories, services. All components are
// singletons for the process lifetime.
type Container struct {
	Config *config.Config

	// Infrastructure
	Store  *database.LocalStore
	Images *storage.ImageProcessor

	// Repositories
	CatalogRepo catalogRepo.CatalogRepository
	ReviewRepo  reviewRepo.ReviewStore

	// Services
	CatalogService catalogService.ServiceInterface
	ReviewService  reviewService.ServiceInterface
}

// NewContainer builds and initializes the dependency graph. A catalog
// load failure is fatal here: the app never runs on a partial catalog.
func NewContainer(ctx context.Context) (*Container, error) {
	c := &Container{}

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	// 2. Infrastructure
	store, err := database.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	c.Store = store
	c.Images = storage.NewImageProcessor(cfg.Images.MaxDimension, cfg.Images.JPEGQuality)

	// 3. Repositories
	c.CatalogRepo = catalogRepo.NewJSONFileRepository(cfg.Catalog.Path)
	c.ReviewRepo = reviewRepo.NewLocalReviewStore(store)

	// 4. Services
	c.CatalogService, err = catalogService.NewCatalogService(ctx, c.CatalogRepo)
	if err != nil {
		store.Close()
		return nil, err
	}
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.Images)

	logger.Info("container initialized", map[string]interface{}{
		"catalog": cfg.Catalog.Path,
		"store":   cfg.Store.Path,
	})

	return c, nil
}

// Cleanup releases held resources. Safe to call once after use.
func (c *Container) Cleanup() {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			logger.Error("failed to close local store", err)
		}
	}
}
