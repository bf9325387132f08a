package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the solver module. Methods are nil-safe
// so tests can pass a nil receiver.
type Metrics struct {
	// Full solve latency, including population work across all generations
	SolveLatency prometheus.Histogram

	// Solve outcomes: feasible, empty, invalid
	SolveOutcome *prometheus.CounterVec

	// Generations evolved across all solves
	Generations prometheus.Counter
}

// New creates a new Metrics instance with all solver metrics registered.
func New() *Metrics {
	return &Metrics{
		SolveLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "knapsackd_solve_duration_seconds",
			Help:    "Duration of full knapsack solves",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),

		SolveOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "knapsackd_solve_outcomes_total",
			Help: "Total solve outcomes by result class",
		}, []string{"outcome"}), // outcome: "feasible", "empty", "invalid"

		Generations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "knapsackd_generations_total",
			Help: "Total generations evolved across all solves",
		}),
	}
}

// ObserveSolveLatency records the duration of one solve.
func (m *Metrics) ObserveSolveLatency(d time.Duration) {
	if m != nil {
		m.SolveLatency.Observe(d.Seconds())
	}
}

// IncrementOutcome records a solve outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.SolveOutcome.WithLabelValues(outcome).Inc()
	}
}

// AddGenerations records the generations evolved by one solve.
func (m *Metrics) AddGenerations(n int) {
	if m != nil && n > 0 {
		m.Generations.Add(float64(n))
	}
}
