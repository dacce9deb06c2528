package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string         `json:"phone"`
	Password  string         `json:"-" gorm:"not null"`
	Roles     []Role         `json:"roles" gorm:"many2many:user_roles;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// Capabilities flattens the user's roles into an immutable permission set.
func (u *User) Capabilities() Capabilities {
	admin := false
	var tokens []string
	for _, role := range u.Roles {
		if role.Name == AdminRoleName {
			admin = true
		}
		for _, perm := range role.Permissions {
			tokens = append(tokens, perm.Name)
		}
	}
	return NewCapabilities(u.ID, admin, tokens)
}
