package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"contractdesk-backend/models"
	"contractdesk-backend/repository"
)

// UserHandler handles HTTP requests for users. Passwords are bcrypt-hashed
// here, before they reach the repository; the repository stores whatever
// opaque string it is handed.
type UserHandler struct {
	store repository.Store
}

// NewUserHandler creates a new user handler
func NewUserHandler(store repository.Store) *UserHandler {
	return &UserHandler{store: store}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListUsers())
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.store.GetUser(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.InsertUser
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, "HASH_FAILED", err.Error())
		return
	}
	req.Password = string(hashed)

	user, err := h.store.CreateUser(req)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			errorJSON(c, http.StatusConflict, "USERNAME_TAKEN", "username already taken")
			return
		}
		errorJSON(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.UpdateUser
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			errorJSON(c, http.StatusInternalServerError, "HASH_FAILED", err.Error())
			return
		}
		hp := string(hashed)
		req.Password = &hp
	}

	user, err := h.store.UpdateUser(id, req)
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			errorJSON(c, http.StatusConflict, "USERNAME_TAKEN", "username already taken")
			return
		}
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteUser(id) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
