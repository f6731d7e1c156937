package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/urbansymbiosis/dashboard-api/internal/middleware"
	"github.com/urbansymbiosis/dashboard-api/internal/server"
)

var errNoDatabase = errors.New("database not configured")

// HealthHandler reports whether the service and its store are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// CheckResult is the outcome of one dependency check.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth answers 200 when every configured check passes and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      map[string]CheckResult{},
	}

	timeout := 5 * time.Second
	checks := []string{"database"}
	if obs := h.server.Config.Observability; obs != nil {
		if !obs.HealthChecks.Enabled {
			checks = nil
		} else {
			timeout = obs.HealthChecks.Timeout
			checks = obs.HealthChecks.Checks
		}
	}

	for _, name := range checks {
		if name != "database" {
			continue
		}

		result, err := h.checkDatabase(c.Request().Context(), timeout)
		response.Checks[name] = result

		if err != nil {
			response.Status = "unhealthy"
			logger.Error().
				Err(err).
				Str("check", name).
				Str("response_time", result.ResponseTime).
				Msg("health check failed")
			h.recordFailure(name, result)
		}
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context, timeout time.Duration) (CheckResult, error) {
	start := time.Now()

	if h.server.DB == nil {
		return CheckResult{Status: "unhealthy", ResponseTime: "0s", Error: "database not configured"}, errNoDatabase
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := h.server.DB.Ping(ctx); err != nil {
		return CheckResult{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).String(),
			Error:        "database unreachable",
		}, err
	}
	return CheckResult{Status: "healthy", ResponseTime: time.Since(start).String()}, nil
}

func (h *HealthHandler) recordFailure(check string, result CheckResult) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}
	app.RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":    check,
		"operation":     "health_check",
		"error_message": result.Error,
		"response_time": result.ResponseTime,
	})
}
