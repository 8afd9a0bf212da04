package models

import "time"

// User is an operator account allowed to manage routes and buses.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role"` // "admin"
}

const RoleAdmin = "admin"
