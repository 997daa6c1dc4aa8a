package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "medremind"

// Metrics holds the Prometheus collectors for reminder checks and the API.
type Metrics struct {
	checks        prometheus.Counter
	checkDuration prometheus.Histogram
	lastDue       prometheus.Gauge
	notifications *prometheus.CounterVec
	acks          *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
}

// MustNew constructs Metrics registered with reg. Registration errors panic,
// the same way promauto does.
func MustNew(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		checks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "checks_total",
			Help:      "Number of due-reminder checks run.",
		}),
		checkDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "check_duration_seconds",
			Help:      "Time spent in one due-reminder check.",
			Buckets:   prometheus.DefBuckets,
		}),
		lastDue: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "last_due_count",
			Help:      "Size of the due set selected by the most recent check.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "notifications_total",
			Help:      "Reminder notifications by outcome.",
		}, []string{"result"}),
		acks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "acknowledgements_total",
			Help:      "Mark-notified writes by outcome.",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
	reg.MustRegister(m.checks, m.checkDuration, m.lastDue, m.notifications, m.acks, m.httpRequests)
	return m
}

// ObserveCheck records one completed check.
func (m *Metrics) ObserveCheck(started time.Time, due int) {
	m.checks.Inc()
	m.checkDuration.Observe(time.Since(started).Seconds())
	m.lastDue.Set(float64(due))
}

func (m *Metrics) NotificationSent()   { m.notifications.WithLabelValues("sent").Inc() }
func (m *Metrics) NotificationFailed() { m.notifications.WithLabelValues("failed").Inc() }
func (m *Metrics) AckStored()          { m.acks.WithLabelValues("stored").Inc() }
func (m *Metrics) AckFailed()          { m.acks.WithLabelValues("failed").Inc() }

// HTTPRequest counts a served request.
func (m *Metrics) HTTPRequest(route string, code int) {
	m.httpRequests.WithLabelValues(route, codeLabel(code)).Inc()
}

func codeLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
