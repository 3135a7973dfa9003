package observability

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	PlacesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gmaps", Name: "places_processed_total", Help: "Places handled by the scraper."},
		[]string{"status"}, // ok|skipped|failed
	)
	ReviewsCollected = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "gmaps", Name: "reviews_collected_total", Help: "Raw reviews extracted."},
	)
	HarvestStalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "gmaps", Name: "harvest_stall_events_total", Help: "Harvester stall ladder events."},
		[]string{"event"}, // stall|escalate|give_up
	)
	HarvestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "gmaps", Name: "harvest_duration_seconds",
			Help:    "Wall time of one harvest loop.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)
	DatasetRows = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "gmaps", Name: "dataset_rows_total", Help: "Rows written to the final dataset."},
	)
)

func init() {
	prometheus.MustRegister(PlacesProcessed, ReviewsCollected, HarvestStalls, HarvestDuration, DatasetRows)
}

// Serve exposes /metrics and /healthz on addr. Empty addr disables it.
func Serve(addr string) {
	if addr == "" {
		return
	}
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func ObservePlace(status string)     { PlacesProcessed.WithLabelValues(status).Inc() }
func ObserveReviews(n int)           { ReviewsCollected.Add(float64(n)) }
func ObserveStall(event string)      { HarvestStalls.WithLabelValues(event).Inc() }
func ObserveHarvest(d time.Duration) { HarvestDuration.Observe(d.Seconds()) }
func ObserveDatasetRows(n int)       { DatasetRows.Add(float64(n)) }
