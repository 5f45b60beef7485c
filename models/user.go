package models

import (
	"time"
)

// Role defines who is driving the app right now
type Role string

const (
	RoleGuest    Role = "guest"
	RoleCustomer Role = "customer"
	RoleChef     Role = "chef"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleCustomer, RoleChef:
		return true
	}
	return false
}

// Profile is the signed-in user's record. Guests have none.
type Profile struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	JoinDate    time.Time `json:"join_date"`
	Preferences []string  `json:"preferences"`
}
