package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

var (
	once                      sync.Once
	metricsRouter             *chi.Mux
	counterStoreLatency       *prometheus.HistogramVec
	queueSendErrorCounter     prometheus.Counter
	pollerDurationHistogram   *prometheus.HistogramVec
	taskExecutionDuration     *prometheus.HistogramVec
	roundAggregationDuration  *prometheus.HistogramVec
	orphanContributionCounter prometheus.Counter
	giftsSettledCounter       *prometheus.CounterVec
	giftCoinsCounter          prometheus.Counter
	challengesFinishedCounter *prometheus.CounterVec
	unappliedLedgerGauge      prometheus.Gauge
	dbLatency                 *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	counterStoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "counter_store_latency_seconds",
			Help:    "Histogram of counter store call durations in seconds.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	taskExecutionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scheduled_task_duration_seconds",
			Help:    "Scheduled task execution duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"kind", "status", "attempt"},
	)

	roundAggregationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "round_aggregation_duration_seconds",
			Help:    "Round aggregation duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"status"},
	)

	orphanContributionCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "round_orphan_contribution_count",
			Help: "Number of round contributors that could not be mapped to a team",
		},
	)

	giftsSettledCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gifts_settled_count",
			Help: "Number of gift requests split by outcome",
		},
		[]string{"status"},
	)

	giftCoinsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gift_coins_total",
			Help: "Total coins moved by settled gifts",
		},
	)

	challengesFinishedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "challenges_finished_count",
			Help: "Number of challenges that reached a terminal status",
		},
		[]string{"status"},
	)

	unappliedLedgerGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "unapplied_ledger_entries_count",
			Help: "Number of ledger entries found unapplied by the last reconcile run",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		counterStoreLatency,
		queueSendErrorCounter,
		pollerDurationHistogram,
		taskExecutionDuration,
		roundAggregationDuration,
		orphanContributionCounter,
		giftsSettledCounter,
		giftCoinsCounter,
		challengesFinishedCounter,
		unappliedLedgerGauge,
		dbLatency,
	)
}

// Recorders below are no-ops until Init is called.

func RecordCounterStoreLatency(d time.Duration, method string, failure bool) {
	if counterStoreLatency == nil {
		return
	}
	counterStoreLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	if dbLatency == nil {
		return
	}
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordTaskExecutionDuration(d time.Duration, kind string, attempt uint32, failure bool) {
	if taskExecutionDuration == nil {
		return
	}
	attemptStr := strconv.FormatUint(uint64(attempt), 10)
	taskExecutionDuration.WithLabelValues(kind, outcome(failure).String(), attemptStr).Observe(d.Seconds())
}

func RecordRoundAggregationDuration(d time.Duration, failure bool) {
	if roundAggregationDuration == nil {
		return
	}
	roundAggregationDuration.WithLabelValues(outcome(failure).String()).Observe(d.Seconds())
}

func AddOrphanContributions(n int) {
	if orphanContributionCounter == nil {
		return
	}
	orphanContributionCounter.Add(float64(n))
}

func RecordGiftSettled(coins uint64, failure bool) {
	if giftsSettledCounter == nil {
		return
	}
	giftsSettledCounter.WithLabelValues(outcome(failure).String()).Inc()
	if !failure {
		giftCoinsCounter.Add(float64(coins))
	}
}

func RecordChallengeFinished(status string) {
	if challengesFinishedCounter == nil {
		return
	}
	challengesFinishedCounter.WithLabelValues(status).Inc()
}

func RecordUnappliedLedgerEntries(count int) {
	if unappliedLedgerGauge == nil {
		return
	}
	unappliedLedgerGauge.Set(float64(count))
}

func RecordQueueSendError() {
	if queueSendErrorCounter == nil {
		return
	}
	queueSendErrorCounter.Inc()
}
