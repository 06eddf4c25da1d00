package shared

import (
	"net/http"

	"fundrr-backend/services/config"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CampaignsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fundrr",
		Name:      "campaigns_created_total",
		Help:      "Number of successfully created campaigns",
	})
	ContributionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fundrr",
		Name:      "contributions_total",
		Help:      "Number of successful contributions",
	})
	WithdrawalsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fundrr",
		Name:      "withdrawals_total",
		Help:      "Number of successful withdrawals",
	})
	TransferFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fundrr",
		Name:      "transfer_failures_total",
		Help:      "Number of failed side-channel transfers",
	})
	SolPriceUSD = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "fundrr",
		Name:      "sol_price_usd",
		Help:      "Last polled SOL/USD price",
	})
)

// RegisterCacheAgeGauge exposes the age of the campaign list cache slot.
// Called once when the campaign routes are wired up.
func RegisterCacheAgeGauge(age func() float64) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "fundrr",
		Name:      "campaign_list_cache_age_seconds",
		Help:      "Age of the cached campaign list, 0 when not cached",
	}, age)
}

func InitMetricsServer(cfg *config.MetricsConfig) {
	if len(cfg.PrometheusAddress) == 0 {
		return
	}

	r := mux.NewRouter()

	r.Path("/metrics").Handler(promhttp.Handler())

	srv := &http.Server{
		Addr:    cfg.PrometheusAddress,
		Handler: r,
	}
	go srv.ListenAndServe()
}
