package models

import (
	"time"

	"gorm.io/gorm"
)

type Article struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	Title          string         `json:"title" gorm:"not null"`
	Description    string         `json:"description" gorm:"type:text"`
	AuthorID       uint           `json:"author_id" gorm:"not null"`
	Author         User           `json:"author" gorm:"foreignKey:AuthorID"`
	CategoryID     uint           `json:"category_id" gorm:"not null"`
	Category       Category       `json:"category" gorm:"foreignKey:CategoryID"`
	State          ArticleState   `json:"state" gorm:"default:'draft'"`
	PublishedAt    *time.Time     `json:"published_at"`
	ViewsNumber    int            `json:"views_number" gorm:"default:0"`
	SharesNumber   int            `json:"shares_number" gorm:"default:0"`
	LikesNumber    int            `json:"likes_number" gorm:"default:0"`
	DislikesNumber int            `json:"dislikes_number" gorm:"default:0"`
	Tags           []Tag          `json:"tags" gorm:"many2many:article_tags;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
