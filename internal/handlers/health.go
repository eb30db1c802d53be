package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check probes one dependency; a nil error means healthy.
type Check func(ctx context.Context) error

func runChecks(ctx context.Context, checks map[string]Check) (bool, map[string]string) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	healthy := true
	results := make(map[string]string, len(checks))
	for name, check := range checks {
		if err := check(ctx); err != nil {
			healthy = false
			results[name] = err.Error()
			continue
		}
		results[name] = "ok"
	}
	return healthy, results
}

// HealthCheck answers 200 when every check passes and 503 otherwise.
func HealthCheck(service string, checks map[string]Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		healthy, results := runChecks(c.Request.Context(), checks)
		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "service": service, "checks": results})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": service, "checks": results})
	}
}

// HTTPHealthCheck is HealthCheck for net/http routers.
func HTTPHealthCheck(service string, checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		healthy, results := runChecks(r.Context(), checks)
		body := map[string]interface{}{"status": "healthy", "service": service, "checks": results}
		if !healthy {
			body["status"] = "unhealthy"
			writeJSON(w, http.StatusServiceUnavailable, body)
			return
		}
		writeJSON(w, http.StatusOK, body)
	}
}
