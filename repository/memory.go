package repository

import (
	"sort"
	"sync"
	"time"

	"contractdesk-backend/models"
)

// MemStore is the in-memory implementation of Store. Each entity lives in
// its own map keyed by ID with its own monotonic counter; IDs are never
// reused, even after deletes. One coarse lock guards the whole store so ID
// assignment stays atomic under concurrent requests. State is strictly
// process-lifetime.
type MemStore struct {
	mu sync.RWMutex

	users        map[int]models.User
	clients      map[int]models.Client
	projects     map[int]models.Project
	timeEntries  map[int]models.TimeEntry
	invoices     map[int]models.Invoice
	invoiceItems map[int]models.InvoiceItem

	nextUserID        int
	nextClientID      int
	nextProjectID     int
	nextTimeEntryID   int
	nextInvoiceID     int
	nextInvoiceItemID int
}

// Admin user seeded into every new store at ID 1.
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin123"
)

// NewMemStore creates an empty store pre-populated with the default admin
// user at ID 1. Construct it once at startup and pass it to the handlers;
// it is never reset for the life of the process.
func NewMemStore() *MemStore {
	s := &MemStore{
		users:             make(map[int]models.User),
		clients:           make(map[int]models.Client),
		projects:          make(map[int]models.Project),
		timeEntries:       make(map[int]models.TimeEntry),
		invoices:          make(map[int]models.Invoice),
		invoiceItems:      make(map[int]models.InvoiceItem),
		nextUserID:        1,
		nextClientID:      1,
		nextProjectID:     1,
		nextTimeEntryID:   1,
		nextInvoiceID:     1,
		nextInvoiceItemID: 1,
	}

	admin := models.User{
		ID:        s.nextUserID,
		Username:  SeedAdminUsername,
		Email:     "admin@contractdesk.local",
		Password:  SeedAdminPassword,
		Name:      "Administrator",
		Role:      "admin",
		Language:  models.DefaultUserLanguage,
		CreatedAt: time.Now(),
	}
	s.users[admin.ID] = admin
	s.nextUserID++

	return s
}

// ---- Users ----

func (s *MemStore) ListUsers() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) GetUser(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.userByUsername(username)
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// userByUsername scans in ID order; callers must hold the lock.
func (s *MemStore) userByUsername(username string) (models.User, bool) {
	ids := make([]int, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if s.users[id].Username == username {
			return s.users[id], true
		}
	}
	return models.User{}, false
}

func (s *MemStore) CreateUser(in models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByUsername(in.Username); taken {
		return nil, ErrUsernameTaken
	}

	u := models.User{
		ID:        s.nextUserID,
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		Name:      in.Name,
		Role:      in.Role,
		Avatar:    in.Avatar,
		Language:  in.Language,
		CreatedAt: time.Now(),
	}
	if u.Role == "" {
		u.Role = models.DefaultUserRole
	}
	if u.Language == "" {
		u.Language = models.DefaultUserLanguage
	}

	s.users[u.ID] = u
	s.nextUserID++
	return &u, nil
}

func (s *MemStore) UpdateUser(id int, in models.UpdateUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.Username != nil && *in.Username != u.Username {
		if _, taken := s.userByUsername(*in.Username); taken {
			return nil, ErrUsernameTaken
		}
		u.Username = *in.Username
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		u.Password = *in.Password
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Avatar != nil {
		u.Avatar = in.Avatar
	}
	if in.Language != nil {
		u.Language = *in.Language
	}

	s.users[id] = u
	return &u, nil
}

func (s *MemStore) DeleteUser(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// ---- Clients ----

func (s *MemStore) ListClients(userID int) []*models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Client, 0)
	for _, c := range s.clients {
		if c.UserID != nil && *c.UserID == userID {
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) GetClient(id int) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemStore) CreateClient(in models.InsertClient) *models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := models.Client{
		ID:        s.nextClientID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		UserID:    in.UserID,
		CreatedAt: time.Now(),
	}
	s.clients[c.ID] = c
	s.nextClientID++
	return &c
}

func (s *MemStore) UpdateClient(id int, in models.UpdateClient) (*models.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.clients[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Address != nil {
		c.Address = in.Address
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.UserID != nil {
		c.UserID = in.UserID
	}

	s.clients[id] = c
	return &c, nil
}

func (s *MemStore) DeleteClient(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return false
	}
	delete(s.clients, id)
	return true
}

// ---- Projects ----

func (s *MemStore) ListProjects(userID int) []*models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Project, 0)
	for _, p := range s.projects {
		if p.UserID != nil && *p.UserID == userID {
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) GetProject(id int) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemStore) CreateProject(in models.InsertProject) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Project{
		ID:          s.nextProjectID,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		UserID:      in.UserID,
		ClientID:    in.ClientID,
		HourlyRate:  in.HourlyRate,
		CreatedAt:   time.Now(),
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}

	s.projects[p.ID] = p
	s.nextProjectID++
	return &p
}

func (s *MemStore) UpdateProject(id int, in models.UpdateProject) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = in.Description
	}
	if in.Status != nil {
		p.Status = *in.Status
	}
	if in.UserID != nil {
		p.UserID = in.UserID
	}
	if in.ClientID != nil {
		p.ClientID = in.ClientID
	}
	if in.HourlyRate != nil {
		p.HourlyRate = in.HourlyRate
	}

	s.projects[id] = p
	return &p, nil
}

func (s *MemStore) DeleteProject(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return false
	}
	delete(s.projects, id)
	return true
}

// ---- Time entries ----

func (s *MemStore) ListTimeEntries(userID int) []*models.TimeEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.TimeEntry, 0)
	for _, e := range s.timeEntries {
		if e.UserID != nil && *e.UserID == userID {
			out = append(out, &e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) GetTimeEntry(id int) (*models.TimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.timeEntries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (s *MemStore) CreateTimeEntry(in models.InsertTimeEntry) *models.TimeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := models.TimeEntry{
		ID:          s.nextTimeEntryID,
		ProjectID:   in.ProjectID,
		UserID:      in.UserID,
		Description: in.Description,
		Hours:       in.Hours,
		Date:        in.Date,
		CreatedAt:   time.Now(),
	}
	s.timeEntries[e.ID] = e
	s.nextTimeEntryID++
	return &e
}

func (s *MemStore) UpdateTimeEntry(id int, in models.UpdateTimeEntry) (*models.TimeEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.timeEntries[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.ProjectID != nil {
		e.ProjectID = in.ProjectID
	}
	if in.UserID != nil {
		e.UserID = in.UserID
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Hours != nil {
		e.Hours = *in.Hours
	}
	if in.Date != nil {
		e.Date = *in.Date
	}

	s.timeEntries[id] = e
	return &e, nil
}

func (s *MemStore) DeleteTimeEntry(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.timeEntries[id]; !ok {
		return false
	}
	delete(s.timeEntries, id)
	return true
}

// ---- Invoices ----

func (s *MemStore) ListInvoices(userID int) []*models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Invoice, 0)
	for _, inv := range s.invoices {
		if inv.UserID != nil && *inv.UserID == userID {
			out = append(out, &inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) GetInvoice(id int) (*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &inv, nil
}

func (s *MemStore) CreateInvoice(in models.InsertInvoice) *models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv := models.Invoice{
		ID:            s.nextInvoiceID,
		InvoiceNumber: in.InvoiceNumber,
		ClientID:      in.ClientID,
		ProjectID:     in.ProjectID,
		UserID:        in.UserID,
		Amount:        in.Amount,
		Status:        in.Status,
		DueDate:       in.DueDate,
		IssueDate:     in.IssueDate,
		CreatedAt:     time.Now(),
	}
	if inv.Status == "" {
		inv.Status = models.InvoiceStatusPending
	}

	s.invoices[inv.ID] = inv
	s.nextInvoiceID++
	return &inv
}

func (s *MemStore) UpdateInvoice(id int, in models.UpdateInvoice) (*models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.InvoiceNumber != nil {
		inv.InvoiceNumber = *in.InvoiceNumber
	}
	if in.ClientID != nil {
		inv.ClientID = in.ClientID
	}
	if in.ProjectID != nil {
		inv.ProjectID = in.ProjectID
	}
	if in.UserID != nil {
		inv.UserID = in.UserID
	}
	if in.Amount != nil {
		inv.Amount = *in.Amount
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.DueDate != nil {
		inv.DueDate = in.DueDate
	}
	if in.IssueDate != nil {
		inv.IssueDate = in.IssueDate
	}

	s.invoices[id] = inv
	return &inv, nil
}

func (s *MemStore) DeleteInvoice(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoices[id]; !ok {
		return false
	}
	delete(s.invoices, id)
	return true
}

// ---- Invoice items ----

func (s *MemStore) ListInvoiceItems(invoiceID int) []*models.InvoiceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.InvoiceItem, 0)
	for _, it := range s.invoiceItems {
		if it.InvoiceID == invoiceID {
			out = append(out, &it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemStore) GetInvoiceItem(id int) (*models.InvoiceItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.invoiceItems[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (s *MemStore) CreateInvoiceItem(in models.InsertInvoiceItem) *models.InvoiceItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := models.InvoiceItem{
		ID:          s.nextInvoiceItemID,
		InvoiceID:   in.InvoiceID,
		Description: in.Description,
		Quantity:    in.Quantity,
		Amount:      in.Amount,
		CreatedAt:   time.Now(),
	}
	s.invoiceItems[it.ID] = it
	s.nextInvoiceItemID++
	return &it
}

func (s *MemStore) UpdateInvoiceItem(id int, in models.UpdateInvoiceItem) (*models.InvoiceItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.invoiceItems[id]
	if !ok {
		return nil, ErrNotFound
	}

	if in.InvoiceID != nil {
		it.InvoiceID = *in.InvoiceID
	}
	if in.Description != nil {
		it.Description = *in.Description
	}
	if in.Quantity != nil {
		it.Quantity = *in.Quantity
	}
	if in.Amount != nil {
		it.Amount = *in.Amount
	}

	s.invoiceItems[id] = it
	return &it, nil
}

func (s *MemStore) DeleteInvoiceItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.invoiceItems[id]; !ok {
		return false
	}
	delete(s.invoiceItems, id)
	return true
}

var _ Store = (*MemStore)(nil)
