package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"contractdesk-backend/models"
)

// GetDashboardStats recomputes the dashboard projection for one user on
// every call, so it always reflects the latest CRUD state. Hours and amounts
// are decimal strings; they are accumulated with a decimal type to keep
// repeated sums exact, and an unparsable value contributes exactly zero.
// "This month" means on or after the first calendar day of the current
// month, server-local time. The receiver holds only a read lock: the
// projection never mutates state.
func (s *MemStore) GetDashboardStats(userID int) *models.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &models.DashboardStats{}

	for _, p := range s.projects {
		if p.UserID == nil || *p.UserID != userID {
			continue
		}
		stats.TotalProjects++
		if p.Status == models.ProjectStatusActive {
			stats.ActiveProjects++
		}
	}

	totalHours := decimal.Zero
	monthHours := decimal.Zero
	for _, e := range s.timeEntries {
		if e.UserID == nil || *e.UserID != userID {
			continue
		}
		h := parseDecimal(e.Hours)
		totalHours = totalHours.Add(h)
		if !e.Date.Before(monthStart) {
			monthHours = monthHours.Add(h)
		}
	}

	totalRevenue := decimal.Zero
	monthRevenue := decimal.Zero
	for _, inv := range s.invoices {
		if inv.UserID == nil || *inv.UserID != userID {
			continue
		}
		amt := parseDecimal(inv.Amount)
		totalRevenue = totalRevenue.Add(amt)
		if inv.Status == models.InvoiceStatusPending {
			stats.PendingInvoices++
		}
		if inv.IssueDate != nil && !inv.IssueDate.Before(monthStart) {
			monthRevenue = monthRevenue.Add(amt)
		}
	}

	stats.TotalHours = totalHours.InexactFloat64()
	stats.ThisMonthHours = monthHours.InexactFloat64()
	stats.TotalRevenue = totalRevenue.InexactFloat64()
	stats.ThisMonthRevenue = monthRevenue.InexactFloat64()
	return stats
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
