package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractdesk-backend/models"
	"contractdesk-backend/repository"
)

// ProjectHandler handles HTTP requests for projects
type ProjectHandler struct {
	store repository.Store
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(store repository.Store) *ProjectHandler {
	return &ProjectHandler{store: store}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListProjects(demoUserID))
}

// GetProject handles GET /api/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	project, err := h.store.GetProject(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, project)
}

// CreateProject handles POST /api/projects. Status defaults to "active"
// when the body leaves it unset.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req models.InsertProject
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.UserID = ownerOrDemo(req.UserID)
	c.JSON(http.StatusCreated, h.store.CreateProject(req))
}

// UpdateProject handles PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.UpdateProject
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	project, err := h.store.UpdateProject(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteProject(id) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
