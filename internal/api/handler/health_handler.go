package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dreamladder/backoffice/internal/infrastructure/db/redis"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Liveness reports that the process is up. It never touches dependencies.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "backoffice-api",
	})
}

// HealthDependenciesHandler serves the readiness probe, which checks the
// database and cache connections.
type HealthDependenciesHandler struct {
	db  *gorm.DB
	rdb *goredis.Client
}

func NewHealthDependenciesHandler(db *gorm.DB, rdb *goredis.Client) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{db: db, rdb: rdb}
}

// Readiness pings Postgres and Redis. Any failure yields 503 with the
// per-dependency verdicts.
func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx := c.Request().Context()
	checks := map[string]string{
		"postgres": "ok",
		"redis":    "ok",
	}
	status := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		checks["postgres"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	if err := redis.Healthcheck(ctx, h.rdb); err != nil {
		checks["redis"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	verdict := "ready"
	if status != http.StatusOK {
		verdict = "degraded"
	}
	return c.JSON(status, map[string]any{
		"status": verdict,
		"checks": checks,
	})
}
