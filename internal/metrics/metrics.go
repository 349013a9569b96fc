// Package metrics records statement runs as Prometheus metrics.
//
// The statement tool is a batch job, so metrics are not served over HTTP.
// They are written to a file for node-exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/videostore/internal/calculator"
)

const namespace = "videostore"

// Recorder owns a private registry with the statement metrics.
type Recorder struct {
	registry   *prometheus.Registry
	rentals    *prometheus.CounterVec
	statements *prometheus.CounterVec
	points     prometheus.Counter
	amountOwed prometheus.Histogram
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		rentals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rentals_priced_total",
			Help:      "Rentals priced, by movie category.",
		}, []string{"category"}),
		statements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statements_rendered_total",
			Help:      "Statements rendered, by format.",
		}, []string{"format"}),
		points: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frequent_renter_points_total",
			Help:      "Frequent renter points awarded.",
		}),
		amountOwed: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "amount_owed",
			Help:      "Amount owed per customer statement.",
			Buckets:   []float64{1, 2.5, 5, 10, 25, 50, 100},
		}),
	}
	r.registry.MustRegister(r.rentals, r.statements, r.points, r.amountOwed)
	return r
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveRental counts one priced rental of the given category.
func (r *Recorder) ObserveRental(category string) {
	r.rentals.WithLabelValues(category).Inc()
}

// ObserveStatement counts one rendered statement.
func (r *Recorder) ObserveStatement(format string) {
	r.statements.WithLabelValues(format).Inc()
}

// ObserveTotals records the totals of one customer.
func (r *Recorder) ObserveTotals(t calculator.Totals) {
	r.points.Add(float64(t.Points))
	r.amountOwed.Observe(t.Charge.Float64())
}

// WriteTextfile writes all metrics in the text exposition format to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
