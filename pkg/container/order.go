package container

import (
	"context"
	"fmt"
	"time"

	catalogclient "bookstore-services/internal/clients/catalog"
	"bookstore-services/internal/config"
	"bookstore-services/internal/domains/order/handler"
	"bookstore-services/internal/domains/order/repository"
	"bookstore-services/internal/domains/order/service"
	"bookstore-services/internal/infrastructure/database"
)

// OrderContainer holds the order service's dependency graph. The catalog
// client is constructed here and injected into the coordination logic rather
// than referenced as ambient state.
type OrderContainer struct {
	Config *config.OrderConfig
	DB     *database.PostgresDB

	CatalogClient *catalogclient.Client
	OrderRepo     repository.OrderRepository
	OrderService  service.OrderService
	OrderHandler  *handler.OrderHandler
}

func NewOrderContainer() (*OrderContainer, error) {
	c := &OrderContainer{}

	cfg, err := config.LoadOrder()
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

	c.CatalogClient = catalogclient.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	c.OrderRepo = repository.NewPostgresOrderRepository(db.Pool)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CatalogClient)
	c.OrderHandler = handler.NewOrderHandler(c.OrderService)

	return c, nil
}

func (c *OrderContainer) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
