package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "goalkeeper"

var (
	// requestDuration measures handled HTTP requests.
	// Labels: method, route (chi route pattern), status
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	// updatesRecorded counts persisted progress updates.
	updatesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "goals",
		Name:      "updates_recorded_total",
		Help:      "Total progress updates recorded",
	})

	// streakOutcomes counts what each update did to its streak.
	// Labels: outcome (started, extended, reset, unchanged)
	streakOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "streaks",
		Name:      "outcomes_total",
		Help:      "Streak transitions by outcome",
	}, []string{"outcome"})

	// statusTransitions counts goal lifecycle transitions.
	// Labels: to (in_progress, completed)
	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "goals",
		Name:      "status_transitions_total",
		Help:      "Goal status transitions by target status",
	}, []string{"to"})

	// persistenceErrors counts storage failures surfaced to callers.
	// Labels: op
	persistenceErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "storage",
		Name:      "errors_total",
		Help:      "Storage failures by operation",
	}, []string{"op"})
)

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func UpdateRecorded() {
	updatesRecorded.Inc()
}

func StreakOutcome(outcome string) {
	streakOutcomes.WithLabelValues(outcome).Inc()
}

func StatusTransition(to string) {
	statusTransitions.WithLabelValues(to).Inc()
}

func PersistenceError(op string) {
	persistenceErrors.WithLabelValues(op).Inc()
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
