package models

import (
	"time"

	"gorm.io/gorm"
)

type CategoryType string

const (
	CategoryFree        CategoryType = "free"
	CategorySuscription CategoryType = "suscription"
	CategoryPay         CategoryType = "pay"
)

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryFree, CategorySuscription, CategoryPay:
		return true
	default:
		return false
	}
}

type Category struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Type        CategoryType   `json:"type" gorm:"default:'free'"`
	State       bool           `json:"state" gorm:"default:true"`
	IsModerated bool           `json:"is_moderated" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
