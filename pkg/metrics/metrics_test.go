package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersRegistered(t *testing.T) {
	before := testutil.ToFloat64(SamplesIngested)
	SamplesIngested.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SamplesIngested))

	AlertsSynthesized.WithLabelValues("staffing", "high").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(AlertsSynthesized.WithLabelValues("staffing", "high")))
}

func TestHandlerServesExposition(t *testing.T) {
	SamplesIngested.Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "footfall_samples_ingested_total"))
}
