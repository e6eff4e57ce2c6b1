package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	FirstName   string `gorm:"size:100;not null"`
	LastName    string `gorm:"size:100;not null"`
	Email       string `gorm:"size:100;not null;uniqueIndex"`
	Phone       string `gorm:"size:20"`
	Designation string `gorm:"size:100;default:'Staff'"`
	Password    string `gorm:"size:255;not null"`
	Roles       []Role `gorm:"many2many:user_roles;"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
}

type Role struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	Slug      string `gorm:"size:100;not null;uniqueIndex"`
	GuardName string `gorm:"size:20;not null;default:'web'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	RoleGuard          = "web"
	DefaultRoleName    = "staff"
	DefaultDesignation = "Staff"
)
