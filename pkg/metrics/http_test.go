package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("POST", "/api/claim", 200, 120*time.Millisecond)
	m.ObserveRequest("POST", "/api/claim", 400, 5*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	total, err := sumCounter(mfs, "http_requests_total")
	if err != nil {
		t.Fatalf("fetch requests: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 requests recorded, got %f", total)
	}
}

func TestClaimMetricsCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewClaimMetrics(reg)

	m.IncOutcome("claimed")
	m.IncOutcome("conflict")
	m.IncOutcome("conflict")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	got, err := counterValue(mfs, "claims_total", "outcome", "conflict")
	if err != nil {
		t.Fatalf("fetch conflicts: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 2 conflicts, got %f", got)
	}
}

func TestNilRegistererIsNoop(t *testing.T) {
	m := NewHTTPMetrics(nil)
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	c := NewClaimMetrics(nil)
	c.IncOutcome("claimed")
}

func sumCounter(mfs []*dto.MetricFamily, name string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	var sum float64
	for _, metric := range mf.GetMetric() {
		sum += metric.GetCounter().GetValue()
	}
	return sum, nil
}

func counterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == label && pair.GetValue() == value {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("label %s=%s not found on %q", label, value, name)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}
