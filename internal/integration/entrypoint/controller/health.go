// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finanza-tracker/backend/internal/integration/entrypoint/dto"
)

// HealthController reports liveness of the API and its database.
type HealthController struct {
	dbHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbHealthChecker func() bool) *HealthController {
	return &HealthController{
		dbHealthChecker: dbHealthChecker,
	}
}

// Check handles GET /health requests. The endpoint always answers 200; the
// database state is reported in the body rather than through the status code.
func (c *HealthController) Check(ctx *gin.Context) {
	database := "disconnected"
	if c.dbHealthChecker != nil && c.dbHealthChecker() {
		database = "connected"
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Database:  database,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
