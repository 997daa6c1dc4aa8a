package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Status represents the health status of the service or a dependency.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult is the result of checking one dependency.
type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthStatus is the overall readiness report.
type HealthStatus struct {
	Status Status                 `json:"status"`
	Checks map[string]CheckResult `json:"checks,omitempty"`
}

// Pinger is anything whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker runs readiness checks against the database.
type Checker struct {
	db Pinger
}

func NewChecker(db Pinger) *Checker {
	return &Checker{db: db}
}

// Check pings every dependency and returns the combined status.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	status := &HealthStatus{
		Status: StatusHealthy,
		Checks: make(map[string]CheckResult),
	}
	if c.db == nil {
		return status
	}

	start := time.Now()
	if err := c.db.Ping(checkCtx); err != nil {
		status.Status = StatusUnhealthy
		status.Checks["sqlite"] = CheckResult{Status: StatusUnhealthy, Error: err.Error()}
		return status
	}
	status.Checks["sqlite"] = CheckResult{
		Status:    StatusHealthy,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	return status
}

// LiveHandler answers liveness probes.
func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// ReadyHandler answers readiness probes with 503 while a dependency is down.
func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())
		code := http.StatusOK
		if status.Status != StatusHealthy {
			code = http.StatusServiceUnavailable
		}
		ctx.JSON(code, status)
	}
}
