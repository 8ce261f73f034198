package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	pollCycleCount          prometheus.Counter
	pollErrorCount          prometheus.Counter
	notificationSentCount   prometheus.Counter
	notificationFailedCount prometheus.Counter
	pollCursorGauge         prometheus.Gauge
}

func NewMetrics(metricsNamespace string) *Metrics {
	metrics := Metrics{
		pollCycleCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: metricsNamespace + "_poll_cycle_count",
			Help: "The number of completed poll cycles.",
		}),
		pollErrorCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: metricsNamespace + "_poll_error_count",
			Help: "The number of poll cycles that hit an error.",
		}),
		notificationSentCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: metricsNamespace + "_notification_sent_count",
			Help: "The number of messages delivered to the chat.",
		}),
		notificationFailedCount: promauto.NewCounter(prometheus.CounterOpts{
			Name: metricsNamespace + "_notification_failed_count",
			Help: "The number of messages that failed to deliver.",
		}),
		pollCursorGauge: promauto.NewGauge(prometheus.GaugeOpts{
			Name: metricsNamespace + "_poll_cursor",
			Help: "The current lower bound of the poll window (unix seconds).",
		}),
	}
	return &metrics
}

func (m *Metrics) IncPollCycles() {
	if m == nil {
		return
	}
	m.pollCycleCount.Inc()
}

func (m *Metrics) IncPollErrors() {
	if m == nil {
		return
	}
	m.pollErrorCount.Inc()
}

func (m *Metrics) IncNotificationsSent() {
	if m == nil {
		return
	}
	m.notificationSentCount.Inc()
}

func (m *Metrics) IncNotificationsFailed() {
	if m == nil {
		return
	}
	m.notificationFailedCount.Inc()
}

func (m *Metrics) SetPollCursor(cursor int64) {
	if m == nil {
		return
	}
	m.pollCursorGauge.Set(float64(cursor))
}
