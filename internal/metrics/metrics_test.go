package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveChat(t *testing.T) {
	m := New()

	m.ObserveChat(OutcomeReply)
	m.ObserveChat(OutcomeReply)
	m.ObserveChat(OutcomeFallback)

	assert.InDelta(t, 2, testutil.ToFloat64(m.ChatRequests.WithLabelValues(OutcomeReply)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ChatRequests.WithLabelValues(OutcomeFallback)), 0)
}

func TestObserveCart(t *testing.T) {
	m := New()

	m.ObserveCart("add", nil)
	m.ObserveCart("remove", errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.CartOperations.WithLabelValues("add", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.CartOperations.WithLabelValues("remove", "error")), 0)
}

func TestObserveTokens(t *testing.T) {
	m := New()

	m.ObserveTokens("gemini-2.0-flash", 120, 30)
	m.ObserveTokens("gemini-2.0-flash", 80, 20)

	assert.InDelta(t, 200, testutil.ToFloat64(m.ModelTokens.WithLabelValues("gemini-2.0-flash", "input")), 0)
	assert.InDelta(t, 50, testutil.ToFloat64(m.ModelTokens.WithLabelValues("gemini-2.0-flash", "output")), 0)
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveModelCall("gemini-2.0-flash", 1200*time.Millisecond, nil)
	m.Orders.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "vaidya_model_request_duration_seconds")
	assert.Contains(t, rec.Body.String(), "vaidya_orders_placed_total 1")
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestNew_IndependentRegistries(t *testing.T) {
	// two instances must not panic on duplicate registration
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
