package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New()

	m.ObserveSearch(true)
	m.ObserveSearch(true)
	m.ObserveSearch(false)
	m.ObserveAssistant(true)
	m.ObserveFocus("bus")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("matched")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.assistantCalls.WithLabelValues("fallback")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.assistantCalls.WithLabelValues("answered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.focusEvents.WithLabelValues("bus")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSearch(false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `mybusnow_searches_total{outcome="empty"} 1`)
}
