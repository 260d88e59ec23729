package orders

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/metrics"
)

func RegisterRoutes(router *gin.RouterGroup, cartStore cart.Store, m *metrics.Metrics) {
	router.POST("/place-order", PlaceOrderHandler(cartStore, m))
}
