package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushSeed(t *testing.T) {
	SeedRowsTotal.WithLabelValues("endpoints", "inserted").Add(3)

	var (
		method, path string
		body         []byte
	)
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer gw.Close()

	require.NoError(t, PushSeed(context.Background(), gw.URL))
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/metrics/job/"+SeedJob, path)
	assert.Contains(t, string(body), "codehook_seed_rows_total")
}

func TestPushSeed_GatewayError(t *testing.T) {
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer gw.Close()

	require.Error(t, PushSeed(context.Background(), gw.URL))
}

func TestMustRegister_ServerCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustRegister(reg)

	HTTPRequestsTotal.WithLabelValues("/healthz", "200").Inc()
	CardCacheTotal.WithLabelValues("hit").Inc()

	n, err := testutil.GatherAndCount(reg, "codehook_http_requests_total", "codehook_card_cache_total", "codehook_seed_rows_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
