package metrics

import "github.com/prometheus/client_golang/prometheus"

// TrackerMetrics records order lifecycle activity.
type TrackerMetrics struct {
	mutations  *prometheus.CounterVec
	orderCount prometheus.Gauge
}

// NewTrackerMetrics registers the tracker metrics on the provided registerer.
func NewTrackerMetrics(reg prometheus.Registerer) *TrackerMetrics {
	if reg == nil {
		return &TrackerMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_mutations_total",
		Help: "Order store mutations by operation.",
	}, []string{"op"})
	orderCount := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "orders_tracked",
		Help: "Orders currently held in the tracker.",
	})
	reg.MustRegister(mutations, orderCount)
	return &TrackerMetrics{
		mutations:  mutations,
		orderCount: orderCount,
	}
}

// IncMutation increments the mutation counter for the named operation.
func (m *TrackerMetrics) IncMutation(op string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// SetOrderCount records how many orders the tracker currently holds.
func (m *TrackerMetrics) SetOrderCount(n int) {
	if m == nil || m.orderCount == nil {
		return
	}
	m.orderCount.Set(float64(n))
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
