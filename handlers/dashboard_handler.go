package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractdesk-backend/repository"
)

// DashboardHandler serves the aggregated dashboard statistics
type DashboardHandler struct {
	store repository.Store
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(store repository.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetStats handles GET /api/dashboard/stats. The projection is recomputed
// on every request, so it reflects any CRUD call that preceded it.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetDashboardStats(demoUserID))
}
