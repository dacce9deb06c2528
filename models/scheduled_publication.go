package models

import (
	"time"
)

// ScheduledPublication is a deferred publish request. At most one row per
// article survives at a time: scheduling again replaces the previous row,
// consumed or not. The sweep only flips Published to true, never deletes.
// The partial unique index rejects a second pending row if two replace
// transactions interleave.
type ScheduledPublication struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ArticleID   uint      `json:"article_id" gorm:"not null;uniqueIndex:idx_pending_schedule,where:published = false"`
	Article     Article   `json:"article" gorm:"foreignKey:ArticleID"`
	ToPublishAt time.Time `json:"to_publish_at" gorm:"not null"`
	Published   bool      `json:"published" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
