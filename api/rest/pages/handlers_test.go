package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/sessions"
	"codeberg.org/vaidya/server/web"
)

const testSessionID = "fedcba9876543210fedcba9876543210"

func setup(t *testing.T, cat *catalog.Catalog) (*gin.Engine, cart.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpl, err := web.Templates()
	require.NoError(t, err)

	store := cart.NewMemoryStore()

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(func(c *gin.Context) {
		c.Set(sessions.ContextKey, testSessionID)
		c.Next()
	})
	RegisterRoutes(router, cat, store)

	return router, store
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestStaticPages(t *testing.T) {
	router, _ := setup(t, catalog.New(nil))

	for _, path := range []string{"/", "/ayurvedic-bot", "/about-team", "/library"} {
		rec := get(router, path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "Vaidya", path)
	}
}

func TestMarketplace(t *testing.T) {
	router, _ := setup(t, catalog.New([]catalog.Item{
		{"medicine_name": "Tulsi Drops", "price": "₹120", "description": "Holy basil"},
		{"medicine_name": "<script>x</script>", "price": "₹1"},
	}))

	rec := get(router, "/marketplace")
	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Tulsi Drops")
	assert.Contains(t, body, "Holy basil")
	assert.NotContains(t, body, "<script>x</script>")
}

func TestMarketplace_EmptyCatalog(t *testing.T) {
	router, _ := setup(t, catalog.New(nil))

	rec := get(router, "/marketplace")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No products are available")
}

func TestCartPage_ShowsTotal(t *testing.T) {
	router, store := setup(t, catalog.New(nil))
	ctx := context.Background()

	for _, item := range []catalog.Item{
		{"medicine_name": "Chyawanprash", "price": "₹1,000"},
		{"medicine_name": "Ashwagandha Churna", "price": "₹250"},
		{"medicine_name": "Mystery Herb", "price": "N/A"},
	} {
		_, err := store.Add(ctx, testSessionID, item)
		require.NoError(t, err)
	}

	rec := get(router, "/cart")
	body := rec.Body.String()

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "Chyawanprash")
	assert.Contains(t, body, "Total: ₹1,250")
}

func TestCartPage_Empty(t *testing.T) {
	router, _ := setup(t, catalog.New(nil))

	rec := get(router, "/cart")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Your cart is empty")
}
