package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleAdmin   = "ADMIN"
	RoleStudent = "STUDENT"
	RoleTeacher = "TEACHER"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique;not null"`
	Email     string `json:"email" gorm:"unique;not null"`
	Role      string `json:"role" gorm:"default:'STUDENT'"` // STUDENT, TEACHER, ADMIN
	Password  string `json:"-" gorm:"not null"`              // bcrypt hash, never serialized
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// IsValidRole reports whether role is one of the known user roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStudent, RoleTeacher:
		return true
	}
	return false
}
