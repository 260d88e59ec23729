package cart

import (
	"encoding/json"
	stderrors "errors"
	"html"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/errors"
	"codeberg.org/vaidya/server/internal/metrics"
	"codeberg.org/vaidya/server/internal/sessions"
)

var errInvalidIndex = stderrors.New("index must be an integer")

// AddHandler godoc
// @Summary Add a catalog item to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body AddRequest true "Item name"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/add-to-cart [post]
func AddHandler(cat *catalog.Catalog, cartStore cart.Store, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			errors.BadRequest(c, "Medicine name required", nil)
			return
		}

		item, ok := cat.Find(req.Name)
		if !ok {
			errors.NotFound(c, `Product "`+req.Name+`" not found`)
			return
		}

		sessionID, err := sessions.ID(c)
		if err != nil {
			errors.InternalError(c, "failed to resolve session", err)
			return
		}

		count, err := cartStore.Add(c.Request.Context(), sessionID, item)
		m.ObserveCart("add", err)
		if err != nil {
			errors.InternalError(c, "failed to add item to cart", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: req.Name + " added to cart",
			Count:   count,
		})
	}
}

// RemoveHandler godoc
// @Summary Remove a cart item by position
// @Tags cart
// @Accept json
// @Produce json
// @Param request body RemoveRequest true "Zero-based index"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/remove-from-cart [post]
func RemoveHandler(cartStore cart.Store, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RemoveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		index, err := parseIndex(req.Index)
		if err != nil {
			errors.BadRequest(c, "Invalid index format", err)
			return
		}

		sessionID, err := sessions.ID(c)
		if err != nil {
			errors.InternalError(c, "failed to resolve session", err)
			return
		}

		removed, count, err := cartStore.Remove(c.Request.Context(), sessionID, index)
		if stderrors.Is(err, cart.ErrIndexOutOfRange) {
			errors.BadRequest(c, "Invalid index", nil)
			return
		}

		m.ObserveCart("remove", err)
		if err != nil {
			errors.InternalError(c, "failed to remove item from cart", err)
			return
		}

		c.JSON(http.StatusOK, Response{
			Message: html.EscapeString(removed.Name()) + " removed",
			Count:   count,
		})
	}
}

// accepts 2, 2.0 or "2"; anything else is a format error
func parseIndex(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, errInvalidIndex
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, errInvalidIndex
	}

	switch idx := v.(type) {
	case float64:
		if idx != math.Trunc(idx) || math.Abs(idx) > math.MaxInt32 {
			return 0, errInvalidIndex
		}
		return int(idx), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return 0, errInvalidIndex
		}
		return n, nil
	default:
		return 0, errInvalidIndex
	}
}
