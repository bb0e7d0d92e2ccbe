package sessions

import (
	"github.com/careersim/gitcoach/internal/gitsim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
	outcomeIgnored = "not_a_command"
)

type Metrics struct {
	commands *prometheus.CounterVec
	active   prometheus.Gauge
}

func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gitcoach",
			Name:      "commands_total",
			Help:      "Simulated commands by kind and outcome.",
		}, []string{"command", "outcome"}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "gitcoach",
			Name:      "sessions_active",
			Help:      "Stored practice sessions.",
		}),
	}
}

func (m *Metrics) observe(kind gitsim.CommandKind, ok bool, success bool) {
	label := kind.String()
	if !kind.Valid() {
		label = "unknown"
	}

	outcome := outcomeFailure
	switch {
	case !ok:
		label, outcome = "none", outcomeIgnored
	case success:
		outcome = outcomeSuccess
	}

	m.commands.WithLabelValues(label, outcome).Inc()
}
