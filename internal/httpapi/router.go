package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/metrics"
	"github.com/ykvlv/medication-reminder/internal/reminder"
)

// Deps are the collaborators the HTTP surface needs.
type Deps struct {
	Service  *reminder.Service
	DB       Pinger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Log      *zap.Logger
}

// NewRouter builds the gin engine with health, metrics and API routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), observe(d.Log, d.Metrics))

	checker := NewChecker(d.DB)
	r.GET("/healthz", checker.LiveHandler())
	r.GET("/readyz", checker.ReadyHandler())
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	h := NewHandler(d.Service, d.Log)
	api := r.Group("/api")
	{
		api.GET("/medications", h.ListMedications)
		api.POST("/medications", h.CreateMedication)
		api.GET("/medications/:id", h.GetMedication)
		api.PUT("/medications/:id", h.UpdateMedication)
		api.DELETE("/medications/:id", h.DeleteMedication)

		api.GET("/cron/check-reminders", h.CheckReminders)
		api.POST("/cron/mark-notified", h.MarkNotified)
	}
	return r
}

// observe logs each request and counts it by route template.
func observe(log *zap.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := c.Writer.Status()
		if m != nil {
			m.HTTPRequest(route, code)
		}
		if route == "/healthz" || route == "/readyz" || route == "/metrics" {
			return
		}
		log.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", code),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
