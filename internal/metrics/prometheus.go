package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReportsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "a11y_agent_reports_generated_total",
			Help: "Bug reports generated, by provider and outcome",
		},
		[]string{"provider", "status"},
	)

	GenerationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "a11y_agent_generation_duration_seconds",
			Help:    "End-to-end report generation latency",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider"},
	)

	RetrievedExamples = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "a11y_agent_retrieved_examples",
			Help:    "Similar training examples found per request",
			Buckets: []float64{0, 1, 2, 3},
		},
	)

	TrainingExamplesTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "a11y_agent_training_examples_total",
			Help: "Training examples currently in the store",
		},
	)

	CacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "a11y_agent_report_cache_hits_total",
			Help: "Report cache hits",
		},
	)

	CacheMisses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "a11y_agent_report_cache_misses_total",
			Help: "Report cache misses",
		},
	)

	UploadsCleaned = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "a11y_agent_uploads_cleaned_total",
			Help: "Expired screenshot uploads removed",
		},
	)
)

func Init() {
	prometheus.MustRegister(ReportsGenerated)
	prometheus.MustRegister(GenerationDuration)
	prometheus.MustRegister(RetrievedExamples)
	prometheus.MustRegister(TrainingExamplesTotal)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(UploadsCleaned)
}

func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
