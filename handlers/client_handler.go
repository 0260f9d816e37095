package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractdesk-backend/models"
	"contractdesk-backend/repository"
)

// ClientHandler handles HTTP requests for clients
type ClientHandler struct {
	store repository.Store
}

// NewClientHandler creates a new client handler
func NewClientHandler(store repository.Store) *ClientHandler {
	return &ClientHandler{store: store}
}

// ListClients handles GET /api/clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListClients(demoUserID))
}

// GetClient handles GET /api/clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	client, err := h.store.GetClient(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient handles POST /api/clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.InsertClient
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.UserID = ownerOrDemo(req.UserID)
	c.JSON(http.StatusCreated, h.store.CreateClient(req))
}

// UpdateClient handles PUT /api/clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.UpdateClient
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	client, err := h.store.UpdateClient(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /api/clients/:id. Projects and invoices that
// reference the client are left untouched; references are soft.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteClient(id) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
