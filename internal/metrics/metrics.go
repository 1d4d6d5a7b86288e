package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// SeedJob is the pushgateway job name used by the seed command.
const SeedJob = "codehook_seed"

var (
	SeedRowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codehook_seed_rows_total",
			Help: "Placeholder rows processed by the seeder, by table and result",
		},
		[]string{"table", "result"}, // users|customers|... , inserted|skipped
	)

	CardCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codehook_card_cache_total",
			Help: "Dashboard card cache lookups by result",
		},
		[]string{"result"}, // hit|miss|error|bypass
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codehook_http_requests_total",
			Help: "HTTP requests by route and status code",
		},
		[]string{"route", "status"},
	)
)

// MustRegister registers the collectors of the long-running server.
func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		CardCacheTotal,
		HTTPRequestsTotal,
	)
}

// PushSeed replaces the seed job's metrics on the pushgateway at url.
func PushSeed(ctx context.Context, url string) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(SeedRowsTotal); err != nil {
		return err
	}
	return push.New(url, SeedJob).Gatherer(reg).PushContext(ctx)
}
