package models

import "time"

// InvoiceStatus represents the state of an invoice.
//
// The nominal lifecycle is draft/sent/paid/overdue, but the operative default
// for a newly created invoice is "pending" and the dashboard counts the
// pending bucket, so the constant set carries both.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice represents a bill issued to a client. Amount is a decimal string.
type Invoice struct {
	ID            int           `json:"id"`
	InvoiceNumber string        `json:"invoiceNumber"`
	ClientID      *int          `json:"clientId"`
	ProjectID     *int          `json:"projectId"`
	UserID        *int          `json:"userId"`
	Amount        string        `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	DueDate       *time.Time    `json:"dueDate"`
	IssueDate     *time.Time    `json:"issueDate"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// InvoiceItem represents a single line on an invoice. InvoiceID is the
// owning reference used to scope item listings.
type InvoiceItem struct {
	ID          int       `json:"id"`
	InvoiceID   int       `json:"invoiceId"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertInvoice carries the fields accepted when creating an invoice
type InsertInvoice struct {
	InvoiceNumber string        `json:"invoiceNumber" binding:"required"`
	ClientID      *int          `json:"clientId"`
	ProjectID     *int          `json:"projectId"`
	UserID        *int          `json:"userId"`
	Amount        string        `json:"amount" binding:"required"`
	Status        InvoiceStatus `json:"status" binding:"omitempty,oneof=pending draft sent paid overdue"`
	DueDate       *time.Time    `json:"dueDate"`
	IssueDate     *time.Time    `json:"issueDate"`
}

// UpdateInvoice carries a partial update; nil fields are left untouched
type UpdateInvoice struct {
	InvoiceNumber *string        `json:"invoiceNumber"`
	ClientID      *int           `json:"clientId"`
	ProjectID     *int           `json:"projectId"`
	UserID        *int           `json:"userId"`
	Amount        *string        `json:"amount"`
	Status        *InvoiceStatus `json:"status" binding:"omitempty,oneof=pending draft sent paid overdue"`
	DueDate       *time.Time     `json:"dueDate"`
	IssueDate     *time.Time     `json:"issueDate"`
}

// InsertInvoiceItem carries the fields accepted when creating an invoice item
type InsertInvoiceItem struct {
	InvoiceID   int    `json:"invoiceId" binding:"required"`
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity"`
	Amount      string `json:"amount" binding:"required"`
}

// UpdateInvoiceItem carries a partial update; nil fields are left untouched
type UpdateInvoiceItem struct {
	InvoiceID   *int    `json:"invoiceId"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Amount      *string `json:"amount"`
}
