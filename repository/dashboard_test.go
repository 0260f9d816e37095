package repository

import (
	"testing"
	"time"

	"contractdesk-backend/models"
)

// lastMonth returns a moment strictly before the first day of the current
// month regardless of today's date.
func lastMonth() time.Time {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return monthStart.AddDate(0, 0, -1)
}

func timePtr(t time.Time) *time.Time { return &t }

func TestDashboardStatsEmpty(t *testing.T) {
	s := NewMemStore()

	stats := s.GetDashboardStats(42)
	if stats.TotalProjects != 0 || stats.ActiveProjects != 0 || stats.PendingInvoices != 0 {
		t.Errorf("counts not zero for empty user: %+v", stats)
	}
	if stats.TotalHours != 0 || stats.TotalRevenue != 0 || stats.ThisMonthHours != 0 || stats.ThisMonthRevenue != 0 {
		t.Errorf("sums not zero for empty user: %+v", stats)
	}
}

func TestDashboardHours(t *testing.T) {
	s := NewMemStore()

	s.CreateTimeEntry(models.InsertTimeEntry{
		UserID: intPtr(1), Description: "hearing prep", Hours: "3.5", Date: time.Now(),
	})
	s.CreateTimeEntry(models.InsertTimeEntry{
		UserID: intPtr(1), Description: "old work", Hours: "2", Date: lastMonth(),
	})

	stats := s.GetDashboardStats(1)
	if stats.TotalHours != 5.5 {
		t.Errorf("totalHours = %v, want 5.5", stats.TotalHours)
	}
	if stats.ThisMonthHours != 3.5 {
		t.Errorf("thisMonthHours = %v, want 3.5", stats.ThisMonthHours)
	}
}

func TestDashboardRevenueAndPending(t *testing.T) {
	s := NewMemStore()

	s.CreateInvoice(models.InsertInvoice{
		UserID: intPtr(1), InvoiceNumber: "INV-001", Amount: "100.00",
		IssueDate: timePtr(time.Now()),
	}) // defaults to pending
	paid := models.InvoiceStatusPaid
	s.CreateInvoice(models.InsertInvoice{
		UserID: intPtr(1), InvoiceNumber: "INV-002", Amount: "50.50", Status: paid,
	}) // no issue date

	stats := s.GetDashboardStats(1)
	if stats.TotalRevenue != 150.50 {
		t.Errorf("totalRevenue = %v, want 150.50", stats.TotalRevenue)
	}
	if stats.PendingInvoices != 1 {
		t.Errorf("pendingInvoices = %d, want 1", stats.PendingInvoices)
	}
	// only the invoice issued this month counts toward the monthly sum
	if stats.ThisMonthRevenue != 100.00 {
		t.Errorf("thisMonthRevenue = %v, want 100.00", stats.ThisMonthRevenue)
	}
}

func TestDashboardUnparsableValuesCountAsZero(t *testing.T) {
	s := NewMemStore()

	s.CreateTimeEntry(models.InsertTimeEntry{
		UserID: intPtr(1), Description: "bad", Hours: "n/a", Date: time.Now(),
	})
	s.CreateTimeEntry(models.InsertTimeEntry{
		UserID: intPtr(1), Description: "good", Hours: "2.25", Date: time.Now(),
	})
	s.CreateInvoice(models.InsertInvoice{
		UserID: intPtr(1), InvoiceNumber: "INV-003", Amount: "",
	})

	stats := s.GetDashboardStats(1)
	if stats.TotalHours != 2.25 {
		t.Errorf("totalHours = %v, want 2.25", stats.TotalHours)
	}
	if stats.TotalRevenue != 0 {
		t.Errorf("totalRevenue = %v, want 0", stats.TotalRevenue)
	}
}

func TestDashboardActiveProjectsFollowsUpdates(t *testing.T) {
	s := NewMemStore()

	before := s.GetDashboardStats(1).ActiveProjects

	p := s.CreateProject(models.InsertProject{Name: "P1", UserID: intPtr(1)})
	if got := s.GetDashboardStats(1).ActiveProjects; got != before+1 {
		t.Fatalf("activeProjects after create = %d, want %d", got, before+1)
	}

	paused := models.ProjectStatusPaused
	if _, err := s.UpdateProject(p.ID, models.UpdateProject{Status: &paused}); err != nil {
		t.Fatalf("UpdateProject: %v", err)
	}
	after := s.GetDashboardStats(1)
	if after.ActiveProjects != before {
		t.Errorf("activeProjects after pause = %d, want %d", after.ActiveProjects, before)
	}
	if after.TotalProjects != 1 {
		t.Errorf("totalProjects = %d, want 1", after.TotalProjects)
	}
}

func TestDashboardScopedToOwner(t *testing.T) {
	s := NewMemStore()

	s.CreateProject(models.InsertProject{Name: "mine", UserID: intPtr(1)})
	s.CreateProject(models.InsertProject{Name: "theirs", UserID: intPtr(2)})
	s.CreateTimeEntry(models.InsertTimeEntry{
		UserID: intPtr(2), Description: "their hours", Hours: "8", Date: time.Now(),
	})
	s.CreateInvoice(models.InsertInvoice{
		UserID: intPtr(2), InvoiceNumber: "INV-X", Amount: "999",
	})

	stats := s.GetDashboardStats(1)
	if stats.TotalProjects != 1 {
		t.Errorf("totalProjects = %d, want 1", stats.TotalProjects)
	}
	if stats.TotalHours != 0 || stats.TotalRevenue != 0 || stats.PendingInvoices != 0 {
		t.Errorf("foreign data leaked into stats: %+v", stats)
	}
}

func TestDashboardReflectsDeletes(t *testing.T) {
	s := NewMemStore()

	e := s.CreateTimeEntry(models.InsertTimeEntry{
		UserID: intPtr(1), Description: "temp", Hours: "4", Date: time.Now(),
	})
	if got := s.GetDashboardStats(1).TotalHours; got != 4 {
		t.Fatalf("totalHours = %v, want 4", got)
	}
	s.DeleteTimeEntry(e.ID)
	if got := s.GetDashboardStats(1).TotalHours; got != 0 {
		t.Errorf("totalHours after delete = %v, want 0", got)
	}
}
