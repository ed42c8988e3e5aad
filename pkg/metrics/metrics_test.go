package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("POST", "/api/movements/issue", 400, 20*time.Millisecond)
	m.Observe("POST", "/api/movements/issue", 400, 10*time.Millisecond)
	m.Observe("GET", "", 200, time.Millisecond)

	if got := testutil.ToFloat64(m.requests.WithLabelValues("POST", "/api/movements/issue", "400")); got != 2 {
		t.Fatalf("expected 2 requests, got %f", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues("GET", "unknown", "200")); got != 1 {
		t.Fatalf("expected empty route to normalize to unknown, got %f", got)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	if got, err := fetchHistogramSum(mfs, "http_request_duration_seconds", "route", "/api/movements/issue"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestLedgerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)
	m.Posted("receive", 50)
	m.Posted("issue", 30)
	m.IssueRejected()

	if got := testutil.ToFloat64(m.movements.WithLabelValues("receive")); got != 1 {
		t.Fatalf("expected one receive, got %f", got)
	}
	if got := testutil.ToFloat64(m.quantity.WithLabelValues("issue")); got != 30 {
		t.Fatalf("expected 30 issued units, got %f", got)
	}
	if got := testutil.ToFloat64(m.rejected); got != 1 {
		t.Fatalf("expected one rejected issue, got %f", got)
	}
}

func TestNilMetricsAreNoops(t *testing.T) {
	var h *HTTPMetrics
	h.Observe("GET", "/", 200, time.Millisecond)
	NewHTTPMetrics(nil).Observe("GET", "/", 200, time.Millisecond)

	var l *LedgerMetrics
	l.Posted("receive", 1)
	l.IssueRejected()
	NewLedgerMetrics(nil).Posted("issue", 1)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == label && lp.GetValue() == value {
					return metric.GetHistogram().GetSampleSum(), nil
				}
			}
		}
		return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
	}
	return 0, fmt.Errorf("metric %q not found", name)
}
