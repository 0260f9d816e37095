package models

// DashboardStats is the read-only projection over a user's projects, time
// entries and invoices. Sums are accumulated in decimal and converted to
// float only for the response payload.
type DashboardStats struct {
	TotalProjects    int     `json:"totalProjects"`
	ActiveProjects   int     `json:"activeProjects"`
	TotalHours       float64 `json:"totalHours"`
	TotalRevenue     float64 `json:"totalRevenue"`
	PendingInvoices  int     `json:"pendingInvoices"`
	ThisMonthHours   float64 `json:"thisMonthHours"`
	ThisMonthRevenue float64 `json:"thisMonthRevenue"`
}
