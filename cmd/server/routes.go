package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/api/rest/cart"
	"codeberg.org/vaidya/server/api/rest/chat"
	"codeberg.org/vaidya/server/api/rest/health"
	"codeberg.org/vaidya/server/api/rest/orders"
	"codeberg.org/vaidya/server/api/rest/pages"
	"codeberg.org/vaidya/server/internal/logger"
	"codeberg.org/vaidya/server/web"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(gin.Recovery())
	router.Use(logger.Middleware())
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	router.GET("/health", health.Handler)
	router.GET("/metrics", gin.WrapH(server.metrics.Handler()))
	router.StaticFS("/static", http.FS(web.Static()))

	// everything below carries a session cookie
	sessioned := router.Group("/")
	sessioned.Use(server.sessionMgr.Middleware())

	pages.RegisterRoutes(sessioned, server.catalog, server.cart)

	api := sessioned.Group("/api")
	{
		api.GET("/ping", health.PingHandler)

		chat.RegisterRoutes(api, server.services.Agent, server.history, server.metrics)
		cart.RegisterRoutes(api, server.catalog, server.cart, server.metrics)
		orders.RegisterRoutes(api, server.cart, server.metrics)
	}
}
