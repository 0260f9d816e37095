package models

import "time"

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPaused    ProjectStatus = "paused"
)

// Project represents client work tracked over time. HourlyRate is kept as a
// decimal string exactly as received; arithmetic on it happens only in the
// aggregation layer.
type Project struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Status      ProjectStatus `json:"status"`
	UserID      *int          `json:"userId"`
	ClientID    *int          `json:"clientId"`
	HourlyRate  *string       `json:"hourlyRate"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// InsertProject carries the fields accepted when creating a project
type InsertProject struct {
	Name        string        `json:"name" binding:"required"`
	Description *string       `json:"description"`
	Status      ProjectStatus `json:"status" binding:"omitempty,oneof=active completed paused"`
	UserID      *int          `json:"userId"`
	ClientID    *int          `json:"clientId"`
	HourlyRate  *string       `json:"hourlyRate"`
}

// UpdateProject carries a partial update; nil fields are left untouched
type UpdateProject struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Status      *ProjectStatus `json:"status" binding:"omitempty,oneof=active completed paused"`
	UserID      *int           `json:"userId"`
	ClientID    *int           `json:"clientId"`
	HourlyRate  *string        `json:"hourlyRate"`
}
