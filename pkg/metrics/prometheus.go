package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	TimelinesBuilt prometheus.Counter
	SnapshotHits   prometheus.Counter
	SnapshotMisses prometheus.Counter
	BuildTime      prometheus.Histogram
	ErrorsCount    *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		TimelinesBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timelines_built_total",
			Help:      "The total number of timelines computed from service rows",
		}),
		SnapshotHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_hits_total",
			Help:      "The total number of timeline requests served from a cached snapshot",
		}),
		SnapshotMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_misses_total",
			Help:      "The total number of timeline requests that required a rebuild",
		}),
		BuildTime: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "timeline_build_time_seconds",
			Help:      "Time taken to fetch inputs and build a timeline",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
