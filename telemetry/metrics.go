package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collects build-time counters and a duration histogram for a
// task graph's lifecycle, registered once into the default Prometheus
// registry the first time NewMetrics runs.
type Metrics struct {
	passesAdded     *prometheus.CounterVec
	barriersCreated *prometheus.CounterVec
	barriersMerged  *prometheus.CounterVec
	buildDuration   *prometheus.HistogramVec
}

// NewMetrics constructs and registers the package's metric vectors.
// Calling it more than once panics (promauto registers eagerly), so
// callers should construct one Metrics per process and share it across
// builds, labeling individual observations by domain/frame instead.
func NewMetrics() *Metrics {
	return &Metrics{
		passesAdded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "taskgraph_passes_added_total",
			Help: "Total number of passes added to a task graph.",
		}, []string{"domain", "frame_id"}),
		barriersCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "taskgraph_barriers_created_total",
			Help: "Total number of barrier nodes synthesized before merging.",
		}, []string{"domain", "frame_id"}),
		barriersMerged: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "taskgraph_barriers_merged_total",
			Help: "Total number of barrier nodes folded away during merging.",
		}, []string{"domain", "frame_id"}),
		buildDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "taskgraph_build_duration_seconds",
			Help:    "Wall-clock time spent in GPUTaskGraph.Build.",
			Buckets: prometheus.DefBuckets,
		}, []string{"domain", "frame_id"}),
	}
}

// ObservePassAdded increments the pass counter for domain/frameID.
func (m *Metrics) ObservePassAdded(domain, frameID string) {
	if m == nil {
		return
	}
	m.passesAdded.WithLabelValues(domain, frameID).Inc()
}

// ObserveBarriersCreated adds n to the barrier-created counter for
// domain/frameID.
func (m *Metrics) ObserveBarriersCreated(domain, frameID string, n int) {
	if m == nil {
		return
	}
	m.barriersCreated.WithLabelValues(domain, frameID).Add(float64(n))
}

// ObserveBarriersMerged adds n to the barrier-merged counter for
// domain/frameID.
func (m *Metrics) ObserveBarriersMerged(domain, frameID string, n int) {
	if m == nil {
		return
	}
	m.barriersMerged.WithLabelValues(domain, frameID).Add(float64(n))
}

// ObserveBuildDuration records d against the build-duration histogram
// for domain/frameID.
func (m *Metrics) ObserveBuildDuration(domain, frameID string, d time.Duration) {
	if m == nil {
		return
	}
	m.buildDuration.WithLabelValues(domain, frameID).Observe(d.Seconds())
}
