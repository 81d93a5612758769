package models

import (
	"gorm.io/gorm"
)

const (
	RoleUser          = "USER"
	RoleAdmin         = "ADMIN"
	RoleTicketChecker = "TICKET_CHECKER"
)

// ValidRole reports whether role is one of the known roles. Roles are fixed at
// registration; there is no role-change operation.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin, RoleTicketChecker:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null" json:"role"`
}
