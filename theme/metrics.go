package theme

import "github.com/prometheus/client_golang/prometheus"

// metrics counts theme applications. A nil *metrics is valid and does
// not count anything.
type metrics struct {
	rules   *prometheus.CounterVec
	matched *prometheus.CounterVec
	deleted *prometheus.CounterVec
}

func setupMetrics(reg prometheus.Registerer) *metrics {

	const prometheusLabelTheme = "theme"

	m := &metrics{}

	m.rules = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slidetheme_rules_applied_total",
			Help: "number of match rules applied to documents",
		},
		[]string{prometheusLabelTheme},
	)

	m.matched = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slidetheme_elements_matched_total",
			Help: "number of elements handed to match handlers",
		},
		[]string{prometheusLabelTheme},
	)

	m.deleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "slidetheme_elements_deleted_total",
		Help: "number of elements deleted from render trees",
	}, []string{prometheusLabelTheme})

	reg.MustRegister(
		m.rules,
		m.matched,
		m.deleted,
	)

	return m
}

func (m *metrics) ruleApplied(theme string) {
	if m == nil {
		return
	}
	m.rules.WithLabelValues(theme).Inc()
}

func (m *metrics) elementsMatched(theme string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.matched.WithLabelValues(theme).Add(float64(n))
}

func (m *metrics) elementsDeleted(theme string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.deleted.WithLabelValues(theme).Add(float64(n))
}
