package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTrackerMetricsCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewTrackerMetrics(reg)

	m.IncMutation("create")
	m.IncMutation("create")
	m.IncMutation("")
	m.SetOrderCount(7)

	if got := testutil.ToFloat64(m.mutations.WithLabelValues("create")); got != 2 {
		t.Fatalf("expected 2 create mutations, got %v", got)
	}
	if got := testutil.ToFloat64(m.mutations.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty op to normalize to unknown, got %v", got)
	}
	if got := testutil.ToFloat64(m.orderCount); got != 7 {
		t.Fatalf("expected gauge 7, got %v", got)
	}
}

func TestTrackerMetricsNilSafe(t *testing.T) {
	var m *TrackerMetrics
	m.IncMutation("create")
	m.SetOrderCount(1)

	unregistered := NewTrackerMetrics(nil)
	unregistered.IncMutation("create")
	unregistered.SetOrderCount(1)
}
