package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func findFamily(t *testing.T, families []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, family := range families {
		if family.GetName() == name {
			return family
		}
	}
	t.Fatalf("metric family %s not found", name)
	return nil
}

func TestObserveRequestRecordsCountAndLatency(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/v1/products", "200", 30*time.Millisecond)
	m.ObserveRequest("GET", "/api/v1/products", "200", 10*time.Millisecond)
	m.ObserveRequest("POST", "/api/v1/cart/items", "401", 5*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	requests := findFamily(t, families, "http_requests_total")
	for _, metric := range requests.GetMetric() {
		labels := map[string]string{}
		for _, pair := range metric.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		switch labels["route"] {
		case "/api/v1/products":
			if got := metric.GetCounter().GetValue(); got != 2 {
				t.Fatalf("expected 2 product requests got %v", got)
			}
		case "/api/v1/cart/items":
			if got := metric.GetCounter().GetValue(); got != 1 {
				t.Fatalf("expected 1 cart request got %v", got)
			}
		}
	}

	duration := findFamily(t, families, "http_request_duration_seconds")
	for _, metric := range duration.GetMetric() {
		if metric.GetHistogram().GetSampleCount() == 0 {
			t.Fatal("expected latency samples to be recorded")
		}
	}
}

func TestObserveRequestNormalizesEmptyRoute(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "", "404", time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	requests := findFamily(t, families, "http_requests_total")
	found := false
	for _, metric := range requests.GetMetric() {
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == "route" && pair.GetValue() == "unknown" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected empty route to be labeled unknown")
	}
}

func TestNilRegistererIsNoOp(t *testing.T) {
	t.Parallel()

	m := NewHTTPMetrics(nil)
	m.ObserveRequest("GET", "/health", "200", time.Millisecond)

	var unset *HTTPMetrics
	unset.ObserveRequest("GET", "/health", "200", time.Millisecond)
}
