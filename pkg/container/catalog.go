package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-services/internal/config"
	"bookstore-services/internal/domains/catalog/handler"
	"bookstore-services/internal/domains/catalog/repository"
	"bookstore-services/internal/domains/catalog/service"
	infraCache "bookstore-services/internal/infrastructure/cache"
	"bookstore-services/internal/infrastructure/database"
	"bookstore-services/pkg/cache"
)

// CatalogContainer holds the catalog service's dependency graph, initialized
// in order: config, infrastructure, repository, service, handler.
type CatalogContainer struct {
	Config *config.CatalogConfig
	DB     *database.PostgresDB
	Cache  cache.Cache

	BookRepo    repository.BookRepository
	BookService service.BookService
	BookHandler *handler.BookHandler
}

func NewCatalogContainer() (*CatalogContainer, error) {
	c := &CatalogContainer{}

	cfg, err := config.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(&cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is non-critical; lookups fall through to the database.
			log.Warn().Err(err).Msg("Redis connection failed (non-critical)")
		}
	}
	c.Cache = redisCache

	c.BookRepo = repository.NewPostgresBookRepository(db.Pool, c.Cache)
	c.BookService = service.NewBookService(c.BookRepo)
	c.BookHandler = handler.NewBookHandler(c.BookService)

	return c, nil
}

func (c *CatalogContainer) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
