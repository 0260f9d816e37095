package models

import "time"

// Client represents a billable client. UserID is a soft reference to the
// owning user; it is never validated against the user table.
type Client struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Phone     *string   `json:"phone"`
	UserID    *int      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertClient carries the fields accepted when creating a client
type InsertClient struct {
	Name    string  `json:"name" binding:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	UserID  *int    `json:"userId"`
}

// UpdateClient carries a partial update; nil fields are left untouched
type UpdateClient struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	UserID  *int    `json:"userId"`
}
