package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"contractdesk-backend/models"
	"contractdesk-backend/repository"
)

// InvoiceHandler handles HTTP requests for invoices and their line items
type InvoiceHandler struct {
	store repository.Store
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(store repository.Store) *InvoiceHandler {
	return &InvoiceHandler{store: store}
}

// ListInvoices handles GET /api/invoices
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListInvoices(demoUserID))
}

// GetInvoice handles GET /api/invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	invoice, err := h.store.GetInvoice(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice handles POST /api/invoices. Status defaults to "pending"
// when the body leaves it unset.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req models.InsertInvoice
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	req.UserID = ownerOrDemo(req.UserID)
	c.JSON(http.StatusCreated, h.store.CreateInvoice(req))
}

// UpdateInvoice handles PUT /api/invoices/:id
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.UpdateInvoice
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	invoice, err := h.store.UpdateInvoice(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice handles DELETE /api/invoices/:id. Line items referencing
// the invoice are left in place; references are soft.
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteInvoice(id) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListInvoiceItems handles GET /api/invoices/:id/items
func (h *InvoiceHandler) ListInvoiceItems(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.ListInvoiceItems(id))
}

// CreateInvoiceItem handles POST /api/invoice-items
func (h *InvoiceHandler) CreateInvoiceItem(c *gin.Context) {
	var req models.InsertInvoiceItem
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.store.CreateInvoiceItem(req))
}

// UpdateInvoiceItem handles PUT /api/invoice-items/:id
func (h *InvoiceHandler) UpdateInvoiceItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.UpdateInvoiceItem
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	item, err := h.store.UpdateInvoiceItem(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteInvoiceItem handles DELETE /api/invoice-items/:id
func (h *InvoiceHandler) DeleteInvoiceItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if !h.store.DeleteInvoiceItem(id) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
