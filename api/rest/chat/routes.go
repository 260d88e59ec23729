package chat

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/internal/history"
	"codeberg.org/vaidya/server/internal/metrics"
)

func RegisterRoutes(router *gin.RouterGroup, replier Replier, historyBuffer *history.Buffer, m *metrics.Metrics) {
	router.POST("/chat", Handler(replier, historyBuffer, m))
}
