package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractdesk-backend/models"
	"contractdesk-backend/repository"
)

// TimeEntryHandler handles HTTP requests for time entries
type TimeEntryHandler struct {
	store repository.Store
}

// NewTimeEntryHandler creates a new time entry handler
func NewTimeEntryHandler(store repository.Store) *TimeEntryHandler {
	return &TimeEntryHandler{store: store}
}

// ListTimeEntries handles GET /api/time-entries
func (h *TimeEntryHandler) ListTimeEntries(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListTimeEntries(demoUserID))
}

// GetTimeEntry handles GET /api/time-entries/:id
func (h *TimeEntryHandler) GetTimeEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	entry, err := h.store.GetTimeEntry(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// CreateTimeEntry handles POST /api/time-entries
func (h *TimeEntryHandler) CreateTimeEntry(c *gin.Context) {
	var req models.InsertTimeEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.UserID = ownerOrDemo(req.UserID)
	c.JSON(http.StatusCreated, h.store.CreateTimeEntry(req))
}

// UpdateTimeEntry handles PUT /api/time-entries/:id
func (h *TimeEntryHandler) UpdateTimeEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.UpdateTimeEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	entry, err := h.store.UpdateTimeEntry(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteTimeEntry handles DELETE /api/time-entries/:id
func (h *TimeEntryHandler) DeleteTimeEntry(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteTimeEntry(id) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
