package metrics

import "github.com/prometheus/client_golang/prometheus"

// LedgerMetrics counts committed stock movements and rejected issues.
type LedgerMetrics struct {
	movements *prometheus.CounterVec
	quantity  *prometheus.CounterVec
	rejected  prometheus.Counter
}

func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	movements := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_movements_total",
		Help: "Committed stock movements by type.",
	}, []string{"type"})
	quantity := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "stock_quantity_posted_total",
		Help: "Units posted to the ledger by movement type.",
	}, []string{"type"})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stock_issue_rejected_total",
		Help: "Issues rejected for insufficient stock.",
	})
	reg.MustRegister(movements, quantity, rejected)
	return &LedgerMetrics{
		movements: movements,
		quantity:  quantity,
		rejected:  rejected,
	}
}

// Posted records a committed movement of qty units.
func (m *LedgerMetrics) Posted(movementType string, qty int) {
	if m == nil || m.movements == nil {
		return
	}
	label := normalizeLabel(movementType)
	m.movements.WithLabelValues(label).Inc()
	m.quantity.WithLabelValues(label).Add(float64(qty))
}

func (m *LedgerMetrics) IssueRejected() {
	if m == nil || m.rejected == nil {
		return
	}
	m.rejected.Inc()
}
