package orders

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/errors"
	"codeberg.org/vaidya/server/internal/logger"
	"codeberg.org/vaidya/server/internal/metrics"
	"codeberg.org/vaidya/server/internal/sessions"
)

// PlaceOrderHandler godoc
// @Summary Place an order for the current cart
// @Description Validates delivery details, assigns an order reference and empties the cart. Nothing is persisted.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body Request true "Delivery details"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/place-order [post]
func PlaceOrderHandler(cartStore cart.Store, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		name := strings.TrimSpace(req.Name)
		address := strings.TrimSpace(req.Address)
		mobile := strings.TrimSpace(req.Mobile)

		if name == "" || address == "" || mobile == "" {
			errors.BadRequest(c, "All fields required", nil)
			return
		}

		sessionID, err := sessions.ID(c)
		if err != nil {
			errors.InternalError(c, "failed to resolve session", err)
			return
		}

		ctx := c.Request.Context()

		items, err := cartStore.Items(ctx, sessionID)
		if err != nil {
			errors.InternalError(c, "failed to load cart", err)
			return
		}

		if len(items) == 0 {
			errors.BadRequest(c, "Cart is empty", nil)
			return
		}

		orderID := uuid.New().String()
		total := cart.FormatAmount(cart.Total(items))

		// delivery details stay out of the log
		logger.FromContext(ctx).Info("order placed",
			"order_id", orderID,
			"session_id", sessionID,
			"items", len(items),
			"total", total,
		)

		err = cartStore.Clear(ctx, sessionID)
		m.ObserveCart("clear", err)
		if err != nil {
			errors.InternalError(c, "failed to clear cart", err)
			return
		}

		m.Orders.Inc()

		c.JSON(http.StatusOK, Response{
			Message: "Order placed successfully",
			OrderID: orderID,
			Total:   total,
		})
	}
}
