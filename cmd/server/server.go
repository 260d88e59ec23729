package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/config"
	"codeberg.org/vaidya/server/internal/history"
	"codeberg.org/vaidya/server/internal/logger"
	"codeberg.org/vaidya/server/internal/metrics"
	"codeberg.org/vaidya/server/internal/sessions"
	"codeberg.org/vaidya/server/internal/storage"
	"codeberg.org/vaidya/server/web"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()

	services, err := InitializeServices(cfg, m)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// Redis is optional; without it session state lives in process memory
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = storage.NewRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		logger.Info("connected to redis")
	}

	storeType := storage.TypeFor(redisClient)
	storeOpts := []storage.Option{storage.WithRedisClient(redisClient)}

	historyStore, err := history.NewStore(storeType, storeOpts...)
	if err != nil {
		closeRedis(redisClient)
		return nil, fmt.Errorf("failed to create history store: %w", err)
	}

	cartStore, err := cart.NewStore(storeType, storeOpts...)
	if err != nil {
		closeRedis(redisClient)
		return nil, fmt.Errorf("failed to create cart store: %w", err)
	}

	tmpl, err := web.Templates()
	if err != nil {
		closeRedis(redisClient)
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	server := &Server{
		config:     cfg,
		redis:      redisClient,
		sessionMgr: sessions.NewManager(cfg.SessionSecret, cfg.BaseURL),
		catalog:    catalog.Load(cfg.CatalogPath),
		history:    history.NewBuffer(historyStore),
		cart:       cartStore,
		services:   services,
		metrics:    m,
		router:     router,
	}

	RegisterRoutes(router, server)

	logger.Info("server initialized",
		"store", storeType,
		"model", services.Agent.Model(),
		"catalog_items", server.catalog.Len(),
	)

	return server, nil
}

// releases stores and the shared Redis connection
func (s *Server) Close() {
	s.history.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	s.cart.Close()    //nolint:errcheck,gosec // best-effort cleanup on shutdown
	closeRedis(s.redis)
}

func closeRedis(client *redis.Client) {
	if client != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup
	}
}
