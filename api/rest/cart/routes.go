package cart

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/metrics"
)

func RegisterRoutes(router *gin.RouterGroup, cat *catalog.Catalog, cartStore cart.Store, m *metrics.Metrics) {
	router.POST("/add-to-cart", AddHandler(cat, cartStore, m))
	router.POST("/remove-from-cart", RemoveHandler(cartStore, m))
}
