// Package metrics exposes Prometheus counters for phone number traffic.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// PhoneMetrics counts parse and format requests.
type PhoneMetrics struct {
	parseTotal  *prometheus.CounterVec
	formatTotal *prometheus.CounterVec
}

// NewPhoneMetrics registers the counters on reg, or on the default
// registerer when reg is nil.
func NewPhoneMetrics(reg prometheus.Registerer) *PhoneMetrics {
	m := &PhoneMetrics{
		parseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phonenorm",
			Subsystem: "phone",
			Name:      "parse_total",
			Help:      "Total phone numbers parsed, by mode and result",
		}, []string{"mode", "result"}),
		formatTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phonenorm",
			Subsystem: "phone",
			Name:      "format_total",
			Help:      "Total phone numbers rendered, by form",
		}, []string{"form"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.parseTotal, m.formatTotal)
	return m
}

// ObserveParse counts a parse attempt. A nil receiver is a no-op.
func (m *PhoneMetrics) ObserveParse(strict bool, err error) {
	if m == nil {
		return
	}
	mode := "lenient"
	if strict {
		mode = "strict"
	}
	result := "ok"
	if err != nil {
		result = "invalid"
	}
	m.parseTotal.WithLabelValues(mode, result).Inc()
}

// ObserveFormat counts a rendering in the given form.
func (m *PhoneMetrics) ObserveFormat(form string) {
	if m == nil {
		return
	}
	m.formatTotal.WithLabelValues(form).Inc()
}
