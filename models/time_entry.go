package models

import "time"

// TimeEntry represents hours logged against a project. Hours is a decimal
// string; an unparsable value counts as zero in aggregations.
type TimeEntry struct {
	ID          int       `json:"id"`
	ProjectID   *int      `json:"projectId"`
	UserID      *int      `json:"userId"`
	Description string    `json:"description"`
	Hours       string    `json:"hours"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertTimeEntry carries the fields accepted when creating a time entry
type InsertTimeEntry struct {
	ProjectID   *int      `json:"projectId"`
	UserID      *int      `json:"userId"`
	Description string    `json:"description" binding:"required"`
	Hours       string    `json:"hours" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

// UpdateTimeEntry carries a partial update; nil fields are left untouched
type UpdateTimeEntry struct {
	ProjectID   *int       `json:"projectId"`
	UserID      *int       `json:"userId"`
	Description *string    `json:"description"`
	Hours       *string    `json:"hours"`
	Date        *time.Time `json:"date"`
}
