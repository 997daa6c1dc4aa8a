package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := MustNew(prometheus.NewRegistry())

	m.ObserveCheck(time.Now(), 3)
	m.NotificationSent()
	m.NotificationSent()
	m.NotificationFailed()
	m.AckStored()
	m.HTTPRequest("/api/medications", 200)
	m.HTTPRequest("/api/medications", 404)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.checks))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.lastDue))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.notifications.WithLabelValues("sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.notifications.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.acks.WithLabelValues("stored")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/medications", "4xx")))
}

func TestMustNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustNew(reg)
	assert.Panics(t, func() { MustNew(reg) })
}
