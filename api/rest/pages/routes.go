package pages

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
)

func RegisterRoutes(router gin.IRoutes, cat *catalog.Catalog, cartStore cart.Store) {
	router.GET("/", Static("home.html", "Home"))
	router.GET("/ayurvedic-bot", Static("bot.html", "Ask Vaidya"))
	router.GET("/marketplace", MarketplaceHandler(cat))
	router.GET("/cart", CartHandler(cartStore))
	router.GET("/about-team", Static("team.html", "About the team"))
	router.GET("/library", Static("library.html", "Library"))
}
