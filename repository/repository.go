package repository

import (
	"errors"

	"contractdesk-backend/models"
)

// ErrNotFound is returned by get/update operations targeting an unknown ID.
var ErrNotFound = errors.New("record not found")

// ErrUsernameTaken is returned when creating or renaming a user would
// duplicate an existing username.
var ErrUsernameTaken = errors.New("username already taken")

// Store is the contract between the HTTP layer and the repository engine.
// List operations are scoped by the owning reference (userId for clients,
// projects, time entries and invoices; invoiceId for invoice items) and
// return an empty slice, never an error, when nothing matches. Deletes
// report whether a record was removed; deleting an unknown ID is not an
// error. No operation validates cross-entity references: deleting a client
// leaves its projects and invoices in place.
type Store interface {
	// Users
	ListUsers() []*models.User
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(in models.InsertUser) (*models.User, error)
	UpdateUser(id int, in models.UpdateUser) (*models.User, error)
	DeleteUser(id int) bool

	// Clients
	ListClients(userID int) []*models.Client
	GetClient(id int) (*models.Client, error)
	CreateClient(in models.InsertClient) *models.Client
	UpdateClient(id int, in models.UpdateClient) (*models.Client, error)
	DeleteClient(id int) bool

	// Projects
	ListProjects(userID int) []*models.Project
	GetProject(id int) (*models.Project, error)
	CreateProject(in models.InsertProject) *models.Project
	UpdateProject(id int, in models.UpdateProject) (*models.Project, error)
	DeleteProject(id int) bool

	// Time entries
	ListTimeEntries(userID int) []*models.TimeEntry
	GetTimeEntry(id int) (*models.TimeEntry, error)
	CreateTimeEntry(in models.InsertTimeEntry) *models.TimeEntry
	UpdateTimeEntry(id int, in models.UpdateTimeEntry) (*models.TimeEntry, error)
	DeleteTimeEntry(id int) bool

	// Invoices
	ListInvoices(userID int) []*models.Invoice
	GetInvoice(id int) (*models.Invoice, error)
	CreateInvoice(in models.InsertInvoice) *models.Invoice
	UpdateInvoice(id int, in models.UpdateInvoice) (*models.Invoice, error)
	DeleteInvoice(id int) bool

	// Invoice items
	ListInvoiceItems(invoiceID int) []*models.InvoiceItem
	GetInvoiceItem(id int) (*models.InvoiceItem, error)
	CreateInvoiceItem(in models.InsertInvoiceItem) *models.InvoiceItem
	UpdateInvoiceItem(id int, in models.UpdateInvoiceItem) (*models.InvoiceItem, error)
	DeleteInvoiceItem(id int) bool

	// Dashboard
	GetDashboardStats(userID int) *models.DashboardStats
}
