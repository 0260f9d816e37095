package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contractdesk-backend/repository"
)

// demoUserID scopes list endpoints and fills missing owner references. The
// front end runs against a single demo tenant; there is no login flow.
const demoUserID = 1

// Register mounts every API route on the given engine. The store is shared
// by all handlers and lives for the whole process.
func Register(r *gin.Engine, store repository.Store) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	userHandler := NewUserHandler(store)
	clientHandler := NewClientHandler(store)
	projectHandler := NewProjectHandler(store)
	timeEntryHandler := NewTimeEntryHandler(store)
	invoiceHandler := NewInvoiceHandler(store)
	dashboardHandler := NewDashboardHandler(store)

	api := r.Group("/api")
	{
		api.GET("/users", userHandler.ListUsers)
		api.GET("/users/:id", userHandler.GetUser)
		api.POST("/users", userHandler.CreateUser)
		api.PUT("/users/:id", userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)

		api.GET("/clients", clientHandler.ListClients)
		api.GET("/clients/:id", clientHandler.GetClient)
		api.POST("/clients", clientHandler.CreateClient)
		api.PUT("/clients/:id", clientHandler.UpdateClient)
		api.DELETE("/clients/:id", clientHandler.DeleteClient)

		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/projects/:id", projectHandler.GetProject)
		api.POST("/projects", projectHandler.CreateProject)
		api.PUT("/projects/:id", projectHandler.UpdateProject)
		api.DELETE("/projects/:id", projectHandler.DeleteProject)

		api.GET("/time-entries", timeEntryHandler.ListTimeEntries)
		api.GET("/time-entries/:id", timeEntryHandler.GetTimeEntry)
		api.POST("/time-entries", timeEntryHandler.CreateTimeEntry)
		api.PUT("/time-entries/:id", timeEntryHandler.UpdateTimeEntry)
		api.DELETE("/time-entries/:id", timeEntryHandler.DeleteTimeEntry)

		api.GET("/invoices", invoiceHandler.ListInvoices)
		api.GET("/invoices/:id", invoiceHandler.GetInvoice)
		api.POST("/invoices", invoiceHandler.CreateInvoice)
		api.PUT("/invoices/:id", invoiceHandler.UpdateInvoice)
		api.DELETE("/invoices/:id", invoiceHandler.DeleteInvoice)

		api.GET("/invoices/:id/items", invoiceHandler.ListInvoiceItems)
		api.POST("/invoice-items", invoiceHandler.CreateInvoiceItem)
		api.PUT("/invoice-items/:id", invoiceHandler.UpdateInvoiceItem)
		api.DELETE("/invoice-items/:id", invoiceHandler.DeleteInvoiceItem)

		api.GET("/dashboard/stats", dashboardHandler.GetStats)
	}
}

// idParam parses the :id path segment; a non-integer ID is a 400 handled
// here so individual handlers only see valid IDs.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_ID", "ID must be an integer")
		return 0, false
	}
	return id, true
}

func errorJSON(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func bindError(c *gin.Context, err error) {
	errorJSON(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
}

func notFound(c *gin.Context) {
	errorJSON(c, http.StatusNotFound, "NOT_FOUND", "record not found")
}

// ownerOrDemo returns the given owner reference, or the demo user when the
// request body carried none.
func ownerOrDemo(userID *int) *int {
	if userID != nil {
		return userID
	}
	uid := demoUserID
	return &uid
}
