package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of a full style-profile computation
	ProfileComputeLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "profile_compute_latency_seconds",
		Help:    "Latency of style affinity profile computations",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of computed profiles, split by empty vs non-empty outcome
	ProfileComputationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_computations_total",
		Help: "Total number of style affinity profile computations",
	}, []string{"outcome"})

	// Total number of inspiration feeds served, split by personalized vs fallback
	FeedRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "feed_requests_total",
		Help: "Total number of inspiration feed requests",
	}, []string{"mode"})

	FeedLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "feed_latency_seconds",
		Help:    "Latency of inspiration feed composition",
		Buckets: prometheus.DefBuckets,
	})

	SearchRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_requests_total",
		Help: "Total number of outfit search requests",
	}, []string{"kind"})

	InteractionEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "interaction_events_total",
		Help: "Total number of logged interaction events",
	}, []string{"action"})
)

func Init() {
	prometheus.MustRegister(
		ProfileComputeLatency,
		ProfileComputationsTotal,
		FeedRequestsTotal,
		FeedLatency,
		SearchRequestsTotal,
		InteractionEventsTotal,
	)
}
