package models

import "time"

// User represents an account in the system
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Never serialize the password
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}

// Defaults applied when a user is created without them
const (
	DefaultUserRole     = "user"
	DefaultUserLanguage = "pt"
)

// InsertUser carries the fields accepted when creating a user
type InsertUser struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar"`
	Language string  `json:"language"`
}

// UpdateUser carries a partial update; nil fields are left untouched
type UpdateUser struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Avatar   *string `json:"avatar"`
	Language *string `json:"language"`
}
