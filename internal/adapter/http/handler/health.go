package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
)

const dependencyTimeout = 2 * time.Second

// DependencyCheck pings one backing service. Check returns nil when it is reachable.
type DependencyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Health struct {
	serviceName string
	checks      []DependencyCheck
	log         logger.Logger
}

func NewHealth(serviceName string, log logger.Logger, checks ...DependencyCheck) *Health {
	return &Health{
		serviceName: serviceName,
		checks:      checks,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Reports the service status and the reachability of its dependencies
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /health [get]
func (h *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	deps := h.checkAll(ctx)

	status, code := "available", http.StatusOK
	for name, state := range deps {
		if state != "up" {
			status, code = "degraded", http.StatusServiceUnavailable
			h.log.Warn(ctx, "dependency unavailable", "dependency", name)
		}
	}

	response := envelope{
		"status": status,
		"system_info": map[string]string{
			"service-name": h.serviceName,
		},
	}
	if len(deps) > 0 {
		response["dependencies"] = deps
	}

	if err := writeJSON(w, code, response, nil); err != nil {
		h.log.Error(ctx, "healthcheck", err)
	}
}

// checkAll runs every check concurrently, each bounded by dependencyTimeout.
func (h *Health) checkAll(ctx context.Context) map[string]string {
	deps := make(map[string]string, len(h.checks))
	if len(h.checks) == 0 {
		return deps
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, c := range h.checks {
		wg.Add(1)
		go func() {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, dependencyTimeout)
			defer cancel()

			state := "up"
			if err := c.Check(checkCtx); err != nil {
				state = "down"
				h.log.Debug(ctx, "dependency check failed", "dependency", c.Name, "error", err.Error())
			}

			mu.Lock()
			deps[c.Name] = state
			mu.Unlock()
		}()
	}
	wg.Wait()

	return deps
}
