package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"codeberg.org/vaidya/server/internal/agent"
	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/config"
	"codeberg.org/vaidya/server/internal/history"
	"codeberg.org/vaidya/server/internal/metrics"
	"codeberg.org/vaidya/server/internal/sessions"
)

// holds all dependencies and state for the API server
type Server struct {
	config     *config.Config
	redis      *redis.Client
	sessionMgr *sessions.Manager
	catalog    *catalog.Catalog
	history    *history.Buffer
	cart       cart.Store
	services   *Services
	metrics    *metrics.Metrics
	router     *gin.Engine
}

// holds the external service clients
type Services struct {
	Agent *agent.Agent
}
