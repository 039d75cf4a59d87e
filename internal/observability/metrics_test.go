package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: prometheus/promauto registers metrics globally, so we need to use
// unique namespaces per test to avoid registration conflicts.

func TestNewMetrics(t *testing.T) {
	m := NewMetrics("test_ncnews_new")

	assert.NotNil(t, m.HTTPRequestsTotal)
	assert.NotNil(t, m.HTTPRequestDuration)
	assert.NotNil(t, m.HTTPRequestsInFlight)
	assert.NotNil(t, m.HTTPRequestsRateLimited)
	assert.NotNil(t, m.DBQueriesFailed)
}

func TestRecordRequest(t *testing.T) {
	m := NewMetrics("test_ncnews_request")

	m.RecordRequest("GET", "/api/articles", "200", 25*time.Millisecond)
	m.RecordRequest("GET", "/api/articles", "200", 40*time.Millisecond)
	m.RecordRequest("GET", "/api/articles", "404", 5*time.Millisecond)

	ok := m.HTTPRequestsTotal.WithLabelValues("GET", "/api/articles", "200")
	assert.Equal(t, float64(2), testutil.ToFloat64(ok))

	notFound := m.HTTPRequestsTotal.WithLabelValues("GET", "/api/articles", "404")
	assert.Equal(t, float64(1), testutil.ToFloat64(notFound))

	count, err := histogramSampleCount(m.HTTPRequestDuration.WithLabelValues("GET", "/api/articles"))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestRecordRateLimited(t *testing.T) {
	m := NewMetrics("test_ncnews_ratelimited")

	initial := testutil.ToFloat64(m.HTTPRequestsRateLimited)
	m.RecordRateLimited()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.HTTPRequestsRateLimited))
}

func TestRecordDBFailure(t *testing.T) {
	m := NewMetrics("test_ncnews_dbfailure")

	initial := testutil.ToFloat64(m.DBQueriesFailed)
	m.RecordDBFailure()
	assert.Equal(t, initial+1, testutil.ToFloat64(m.DBQueriesFailed))
}

// histogramSampleCount extracts the sample count from a histogram observer.
func histogramSampleCount(o prometheus.Observer) (uint64, error) {
	h, ok := o.(prometheus.Histogram)
	if !ok {
		return 0, assert.AnError
	}
	var metric dto.Metric
	if err := h.Write(&metric); err != nil {
		return 0, err
	}
	return metric.GetHistogram().GetSampleCount(), nil
}
