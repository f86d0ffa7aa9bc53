package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var durationBuckets = []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000}

var (
	AssessmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georisk_assessments_total",
		Help: "Total number of risk assessments by resulting tier",
	}, []string{"tier"})
	AssessmentScore = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "georisk_assessment_score",
		Help:    "Distribution of final safety scores",
		Buckets: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	})
	AssessmentDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "georisk_assessment_duration_ms",
		Help:    "Risk assessment duration in milliseconds including lookups",
		Buckets: durationBuckets,
	})
	AreaAnalysesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georisk_area_analyses_total",
		Help: "Total number of context-only area analyses by level",
	}, []string{"level"})
	HighRiskAlertsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "georisk_high_risk_alerts_total",
		Help: "Total number of high risk alerts queued for webhook delivery",
	})
	LookupRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georisk_lookup_requests_total",
		Help: "Total external lookup calls by provider",
	}, []string{"provider"})
	LookupFailTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georisk_lookup_fail_total",
		Help: "Total external lookup failures (error or rejected result) by provider",
	}, []string{"provider"})
	LookupDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "georisk_lookup_duration_ms",
		Help:    "External lookup duration in milliseconds",
		Buckets: durationBuckets,
	}, []string{"provider"})
	GeocodeCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "georisk_geocode_cache_hits_total",
		Help: "Total reverse geocoding cache hits",
	})
	GeocodeCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "georisk_geocode_cache_misses_total",
		Help: "Total reverse geocoding cache misses",
	})
	WebhookDeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georisk_webhook_deliveries_total",
		Help: "Webhook delivery outcomes",
	}, []string{"status"})
	IncidentRecordsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "georisk_incident_records_loaded",
		Help: "Number of incident records held in memory",
	})
	DatasetReloadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "georisk_dataset_reloads_total",
		Help: "Scheduled incident dataset reloads",
	}, []string{"status"})
)

func init() {
	prometheus.MustRegister(AssessmentsTotal)
	prometheus.MustRegister(AssessmentScore)
	prometheus.MustRegister(AssessmentDurationMs)
	prometheus.MustRegister(AreaAnalysesTotal)
	prometheus.MustRegister(HighRiskAlertsTotal)
	prometheus.MustRegister(LookupRequestsTotal)
	prometheus.MustRegister(LookupFailTotal)
	prometheus.MustRegister(LookupDurationMs)
	prometheus.MustRegister(GeocodeCacheHitsTotal)
	prometheus.MustRegister(GeocodeCacheMissesTotal)
	prometheus.MustRegister(WebhookDeliveriesTotal)
	prometheus.MustRegister(IncidentRecordsLoaded)
	prometheus.MustRegister(DatasetReloadsTotal)
}

// Handler возвращает обработчик для /metrics
func Handler() http.Handler { return promhttp.Handler() }
