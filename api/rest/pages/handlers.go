package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/errors"
	"codeberg.org/vaidya/server/internal/sessions"
)

// renders a page that needs no data beyond its title
func Static(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, PageData{Title: title})
	}
}

// renders the product grid
func MarketplaceHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "marketplace.html", PageData{
			Title:     "Marketplace",
			Medicines: cat.Items(),
		})
	}
}

// renders the session's cart with its total
func CartHandler(cartStore cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := sessions.ID(c)
		if err != nil {
			errors.InternalError(c, "failed to resolve session", err)
			return
		}

		items, err := cartStore.Items(c.Request.Context(), sessionID)
		if err != nil {
			errors.InternalError(c, "failed to load cart", err)
			return
		}

		c.HTML(http.StatusOK, "cart.html", PageData{
			Title: "Cart",
			Cart:  items,
			Total: cart.FormatAmount(cart.Total(items)),
		})
	}
}
