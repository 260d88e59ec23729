package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/vaidya/server/internal/cart"
	"codeberg.org/vaidya/server/internal/catalog"
	"codeberg.org/vaidya/server/internal/metrics"
	"codeberg.org/vaidya/server/internal/sessions"
)

type testEnv struct {
	router *gin.Engine
	store  cart.Store
	cookie *http.Cookie
	id     string
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New([]catalog.Item{
		{"medicine_name": "Tulsi Drops", "price": "₹120"},
		{"medicine_name": "<b>Bold</b> Balm", "price": "₹80"},
	})

	env := &testEnv{store: cart.NewMemoryStore()}

	env.router = gin.New()
	env.router.Use(sessions.NewManager("test-secret", "http://localhost").Middleware())
	env.router.GET("/whoami", func(c *gin.Context) {
		id, _ := sessions.ID(c)
		c.String(http.StatusOK, id)
	})
	RegisterRoutes(env.router.Group("/api"), cat, env.store, metrics.New())

	// establish a session so every request shares one cart
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	env.id = rec.Body.String()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessions.CookieName {
			env.cookie = c
		}
	}
	require.NotNil(t, env.cookie)

	return env
}

func (e *testEnv) post(t *testing.T, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(e.cookie)

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return rec, out
}

func (e *testEnv) items(t *testing.T) []catalog.Item {
	t.Helper()

	items, err := e.store.Items(context.Background(), e.id)
	require.NoError(t, err)

	return items
}

func TestAddHandler(t *testing.T) {
	env := setup(t)

	rec, body := env.post(t, "/api/add-to-cart", `{"name": "Tulsi Drops"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tulsi Drops added to cart", body["message"])
	assert.InDelta(t, 1, body["count"], 0)

	rec, body = env.post(t, "/api/add-to-cart", `{"name": "Tulsi Drops"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 2, body["count"], 0)
}

func TestAddHandler_MissingName(t *testing.T) {
	env := setup(t)

	for _, payload := range []string{`{}`, `{"name": ""}`, `{"name": "  "}`} {
		rec, body := env.post(t, "/api/add-to-cart", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Medicine name required", body["error"])
	}

	assert.Empty(t, env.items(t))
}

func TestAddHandler_UnknownProduct(t *testing.T) {
	env := setup(t)

	rec, body := env.post(t, "/api/add-to-cart", `{"name": "Snake Oil"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, `Product "Snake Oil" not found`, body["error"])
	assert.Empty(t, env.items(t))
}

func TestRemoveHandler(t *testing.T) {
	env := setup(t)
	env.post(t, "/api/add-to-cart", `{"name": "Tulsi Drops"}`)
	env.post(t, "/api/add-to-cart", `{"name": "<b>Bold</b> Balm"}`)

	rec, body := env.post(t, "/api/remove-from-cart", `{"index": "1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "&lt;b&gt;Bold&lt;/b&gt; Balm removed", body["message"])
	assert.InDelta(t, 1, body["count"], 0)

	rec, body = env.post(t, "/api/remove-from-cart", `{"index": 0}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 0, body["count"], 0)
}

func TestRemoveHandler_InvalidFormat(t *testing.T) {
	env := setup(t)
	env.post(t, "/api/add-to-cart", `{"name": "Tulsi Drops"}`)

	for _, payload := range []string{`{}`, `{"index": "abc"}`, `{"index": 1.5}`, `{"index": null}`, `{"index": [0]}`} {
		rec, body := env.post(t, "/api/remove-from-cart", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, "Invalid index format", body["error"], payload)
	}

	assert.Len(t, env.items(t), 1)
}

func TestRemoveHandler_OutOfRange(t *testing.T) {
	env := setup(t)
	env.post(t, "/api/add-to-cart", `{"name": "Tulsi Drops"}`)

	// len(cart) itself is out of range
	for _, payload := range []string{`{"index": 1}`, `{"index": -1}`, `{"index": 99}`} {
		rec, body := env.post(t, "/api/remove-from-cart", payload)
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, "Invalid index", body["error"], payload)
	}

	assert.Len(t, env.items(t), 1)
}

func TestParseIndex(t *testing.T) {
	n, err := parseIndex(json.RawMessage(`2`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = parseIndex(json.RawMessage(`2.0`))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = parseIndex(json.RawMessage(`" 3 "`))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parseIndex(nil)
	assert.ErrorIs(t, err, errInvalidIndex)
}
